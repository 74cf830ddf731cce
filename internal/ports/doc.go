// Package ports defines the interfaces that connect mp3cut's core to the
// outside world: running the external ffmpeg process, locating (and on
// first use, acquiring) the ffmpeg binary, and HTTP access for that
// acquisition.
//
// The cutter and locator depend only on these interfaces; concrete
// implementations live under internal/adapters and internal/ffmpegbin.
// Tests substitute fakes to verify command construction and
// failure-isolation logic without ffmpeg or network access.
package ports
