package youtube

import (
	"regexp"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

// YouTube video ids are 11 chars from this alphabet, across every URL shape
// we accept.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`/embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`/shorts/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID pulls the video id out of a watch, short-link, embed or
// shorts URL.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1], nil
		}
	}
	return "", tutorModel.ErrInvalidURL
}
