package upload

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zechsoft/new-trust-sub003/internal/upstream"
)

// Target names where an uploaded file will be attached.
type Target string

const (
	TargetCauseImage Target = "cause-image"
	TargetHeroImage  Target = "hero-image"
	TargetHeroVideo  Target = "hero-video"
)

// Kind returns the media kind accepted for the target.
func (t Target) Kind() Kind {
	if t == TargetHeroVideo {
		return KindVideo
	}
	return KindImage
}

// File is an upload request after it has been read from the form.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

type Uploader interface {
	Upload(ctx context.Context, target Target, f File) (string, error)
}

// Service validates a file and hands it to the configured Uploader.
type Service struct {
	uploader Uploader
	timeout  time.Duration
	log      zerolog.Logger
}

func NewService(u Uploader, timeout time.Duration, log zerolog.Logger) *Service {
	return &Service{uploader: u, timeout: timeout, log: log.With().Str("component", "upload").Logger()}
}

// Upload returns the stored URL, or an *Error describing why it failed.
func (s *Service) Upload(ctx context.Context, target Target, f File) (string, error) {
	mimeType, err := Validate(target.Kind(), f.Data, f.MIMEType)
	if err != nil {
		s.log.Warn().Err(err).Str("target", string(target)).Str("file", f.Name).Msg("upload rejected")
		return "", err
	}
	f.MIMEType = mimeType

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	url, err := s.uploader.Upload(ctx, target, f)
	if err != nil {
		ue := FromError(err)
		s.log.Error().Err(err).Int("code", ue.Code).Str("target", string(target)).Msg("upload failed")
		return "", ue
	}
	s.log.Info().Str("target", string(target)).Int("bytes", len(f.Data)).Str("url", url).Msg("file uploaded")
	return url, nil
}

var remotePaths = map[Target]struct{ path, field string }{
	TargetCauseImage: {"/api/causeList/upload-image", "image"},
	TargetHeroImage:  {"/api/causeHero/upload-image", "image"},
	TargetHeroVideo:  {"/api/causeHero/upload-video", "video"},
}

// RemoteUploader posts files to the upstream backend's upload endpoints.
type RemoteUploader struct {
	Client *upstream.Client
}

func (u RemoteUploader) Upload(ctx context.Context, target Target, f File) (string, error) {
	ep, ok := remotePaths[target]
	if !ok {
		return "", &Error{Code: http.StatusBadRequest, Message: MsgInvalid, Err: fmt.Errorf("unknown target %q", target)}
	}
	return u.Client.UploadFile(ctx, ep.path, ep.field, f.Name, f.MIMEType, f.Data)
}

// LocalUploader writes files into a FileStore and returns their public URL.
type LocalUploader struct {
	Store   *FileStore
	BaseURL string
}

func (u LocalUploader) Upload(ctx context.Context, target Target, f File) (string, error) {
	ext := path.Ext(f.Name)
	if ext == "" {
		ext = mimetype.Detect(f.Data).Extension()
	}
	key := path.Join(string(target), time.Now().UTC().Format("2006/01"), uuid.NewString()+strings.ToLower(ext))
	stored, err := u.Store.Write(ctx, key, f.Data)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(u.BaseURL, "/") + "/uploads/" + stored, nil
}
