package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// MaxFilesPerField caps how many media files one request may carry.
	MaxFilesPerField = 10

	maxMemory = 32 << 20 // 32 MB multipart parse buffer
)

// Saver stores multipart media files on local disk and yields the
// media entries to embed in tour and review documents.
type Saver struct {
	config utils.UploadConfig
	log    *zap.Logger
}

func NewSaver(config utils.UploadConfig, log *zap.Logger) (*Saver, error) {
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", config.Dir, err)
	}

	return &Saver{
		config: config,
		log:    log.With(zap.String("component", "upload")),
	}, nil
}

// SaveFromRequest stores every file under the given form field and
// returns media entries with absolute URLs built from the request host.
// Unsupported mimetypes fail the whole request.
func (s *Saver) SaveFromRequest(r *http.Request, field string) ([]entity.Media, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File[field]
	if len(files) > MaxFilesPerField {
		return nil, fmt.Errorf("too many files: maximum is %d", MaxFilesPerField)
	}

	media := make([]entity.Media, 0, len(files))
	for _, header := range files {
		entry, err := s.saveOne(r, field, header)
		if err != nil {
			return nil, err
		}
		media = append(media, entry)
	}

	return media, nil
}

func (s *Saver) saveOne(r *http.Request, field string, header *multipart.FileHeader) (entity.Media, error) {
	mediaType, err := mediaTypeOf(header)
	if err != nil {
		return entity.Media{}, err
	}

	src, err := header.Open()
	if err != nil {
		return entity.Media{}, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	// uuid keeps concurrent uploads from colliding, which a
	// millisecond timestamp would not guarantee.
	name := fmt.Sprintf("%s-%s%s", field, uuid.NewString(), filepath.Ext(header.Filename))
	path := filepath.Join(s.config.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return entity.Media{}, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return entity.Media{}, fmt.Errorf("write upload file: %w", err)
	}

	s.log.Info("Media file stored",
		zap.String("field", field),
		zap.String("file", name),
		zap.String("type", string(mediaType)),
	)

	return entity.Media{
		URL:  s.publicURL(r, name),
		Type: mediaType,
	}, nil
}

func (s *Saver) publicURL(r *http.Request, name string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s/%s", scheme, r.Host, s.config.URLPrefix, name)
}

func mediaTypeOf(header *multipart.FileHeader) (entity.MediaType, error) {
	contentType := header.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "image"):
		return entity.MediaTypeImage, nil
	case strings.HasPrefix(contentType, "video"):
		return entity.MediaTypeVideo, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", contentType)
	}
}
