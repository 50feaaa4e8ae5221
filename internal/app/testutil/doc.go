// Package testutil provides test doubles shared across packages.
//
//   - MockTranscriber: in-memory api.Transcriber with call history, including
//     whether the input file existed when it was transcribed.
//   - MockMediaTool: testify mock of audio.MediaTool whose SplitSegment writes
//     a placeholder chunk file on success.
//   - AssertDirEmpty / ListDir: filesystem helpers for temp-file cleanup checks.
package testutil
