package utils

import (
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"streamzone/pkg/constants"
)

// GenerateThumbnail grabs a single frame a few seconds into the video and
// writes it as a JPEG. Callers treat failure as non-fatal.
func GenerateThumbnail(videoPath, thumbPath string) error {
	err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{
		"ss": fmt.Sprint(constants.ThumbnailOffsetSeconds),
	}).
		Output(thumbPath, ffmpeg.KwArgs{
			"vframes": "1",
			"s":       constants.ThumbnailSize,
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return err
	}
	return nil
}
