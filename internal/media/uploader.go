package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
)

// sniffLen is how much of a file is read for content detection.
const sniffLen = 3072

// Result describes a stored upload.
type Result struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
}

// Uploader validates files and hands them to a Store.
type Uploader struct {
	store    Store
	maxBytes int64
	newName  func(ext string) string
}

func NewUploader(store Store, maxBytes int64) *Uploader {
	return &Uploader{
		store:    store,
		maxBytes: maxBytes,
		newName:  func(ext string) string { return "file-" + uuid.NewString() + ext },
	}
}

func (u *Uploader) MaxBytes() int64 { return u.maxBytes }

// TooLargeMessage is the rejection message for oversized uploads.
func (u *Uploader) TooLargeMessage() string {
	if u.maxBytes >= 1<<20 {
		return fmt.Sprintf("File too large (max %dMB)", u.maxBytes>>20)
	}
	return fmt.Sprintf("File too large (max %d bytes)", u.maxBytes)
}

// Save validates fh and stores it under a fresh name that keeps the original
// extension.
func (u *Uploader) Save(ctx context.Context, fh *multipart.FileHeader) (*Result, error) {
	if fh == nil {
		return nil, apperr.NewUpload("No file uploaded")
	}
	if fh.Size > u.maxBytes {
		return nil, apperr.NewUpload(u.TooLargeMessage())
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	contentType, err := Check(fh.Filename, fh.Header.Get("Content-Type"), head[:n])
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	name := u.newName(filepath.Ext(fh.Filename))
	url, err := u.store.Put(ctx, name, f, fh.Size, contentType)
	if err != nil {
		return nil, apperr.NewStorage("failed to store file", err)
	}
	return &Result{
		Filename:     name,
		OriginalName: fh.Filename,
		URL:          url,
		Size:         fh.Size,
		MimeType:     contentType,
	}, nil
}
