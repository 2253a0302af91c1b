// Package media validates and stores uploaded images and videos.
package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
)

const (
	familyImage = "image"
	familyVideo = "video"
)

// MsgTypeNotAllowed is the rejection message for any disallowed file.
const MsgTypeNotAllowed = "Only images and videos are allowed"

var allowedExtensions = map[string]string{
	".jpeg": familyImage,
	".jpg":  familyImage,
	".png":  familyImage,
	".webp": familyImage,
	".mp4":  familyVideo,
	".webm": familyVideo,
	".ogg":  familyVideo,
}

// allowedTypes maps each accepted declared content type to its canonical form.
var allowedTypes = map[string]string{
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
	"image/png":  "image/png",
	"image/webp": "image/webp",
	"video/mp4":  "video/mp4",
	"video/webm": "video/webm",
	"video/ogg":  "video/ogg",
}

// AllowedExtensions lists the accepted file extensions.
func AllowedExtensions() []string {
	return []string{".jpeg", ".jpg", ".png", ".webp", ".mp4", ".webm", ".ogg"}
}

func family(contentType string) string {
	f, _, _ := strings.Cut(contentType, "/")
	return f
}

// Check validates a file by extension, declared content type and sniffed
// content. It returns the canonical content type to store the file under.
func Check(filename, declared string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	extFamily, ok := allowedExtensions[ext]
	if !ok {
		return "", apperr.NewUpload(MsgTypeNotAllowed)
	}

	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	canonical, ok := allowedTypes[declared]
	if !ok || family(canonical) != extFamily {
		return "", apperr.NewUpload(MsgTypeNotAllowed)
	}

	if err := checkSniffed(extFamily, ext, head); err != nil {
		return "", err
	}
	return canonical, nil
}

func checkSniffed(extFamily, ext string, head []byte) error {
	detected := mimetype.Detect(head)
	for m := detected; m != nil; m = m.Parent() {
		if family(m.String()) == extFamily {
			return nil
		}
		// Ogg containers without a recognised video stream sniff as application/ogg.
		if ext == ".ogg" && m.Is("application/ogg") {
			return nil
		}
	}
	return apperr.NewUpload(fmt.Sprintf("%s (file content is %s)", MsgTypeNotAllowed, detected.String()))
}
