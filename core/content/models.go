package content

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
)

// AR content types.
const (
	Type3DModel = "3d_model"
	TypeAudio   = "audio"
)

// AllowedFileExts maps a content type to its accepted file extensions
// (lowercase, including the dot).
var AllowedFileExts = map[string][]string{
	Type3DModel: {".gltf", ".glb"},
	TypeAudio:   {".mp3", ".wav"},
}

// ARContent is an augmented-reality learning asset retrievable via its QR code.
type ARContent struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Subject     string    `json:"subject"`
	GradeLevel  string    `json:"gradeLevel"`
	Type        string    `json:"type"`
	QRCode      string    `json:"qrCode"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	FileURL     string    `json:"fileUrl,omitempty"`
	FileName    string    `json:"fileName,omitempty"`
	FileSize    string    `json:"fileSize"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
	UpdatedAt   time.Time `json:"updatedAt"` // UTC
	Status      string    `json:"status"`
}

// File is the opaque handle of an uploaded file: name, size and declared
// MIME type only. File contents are never inspected.
type File struct {
	Name        string
	Size        int64
	ContentType string
}

// Ext returns the lowercase extension of the file name, dot included.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// CheckFileExt validates the file-name extension against the allow-list of
// the declared content type.
func CheckFileExt(typ string, f File) error {
	allowed, ok := AllowedFileExts[typ]
	if !ok {
		return core.NewValidationError(errors.Errorf("Unknown content type %s", typ))
	}
	ext := f.Ext()
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return core.NewValidationError(errors.Errorf(
		"Invalid file type. Expected %s for %s", strings.Join(allowed, " or "), typ,
	))
}

// QRCodeFor derives a content QR code from its subject and id,
// e.g. ESK_HIST_007.
func QRCodeFor(subject string, id int) string {
	prefix := strings.ToUpper(subject)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return fmt.Sprintf("ESK_%s_%03d", prefix, id)
}

// FormatFileSize renders a byte count the way the frontend displays it.
func FormatFileSize(size int64) string {
	return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
}

// NewContent contains information needed to create a new ARContent.
type NewContent struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" validate:"required,subject"`
	GradeLevel  string `json:"gradeLevel" validate:"required,gradelevel"`
	Type        string `json:"type" validate:"required,oneof=3d_model audio"`
	File        File   `json:"-"`
}

func (nc *NewContent) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	return CheckFileExt(nc.Type, nc.File)
}

// UpdateContent defines what information may be provided to modify an
// existing ARContent. Zero-valued fields are left unchanged.
type UpdateContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject" validate:"omitempty,subject"`
	GradeLevel  string `json:"gradeLevel" validate:"omitempty,gradelevel"`
	Type        string `json:"type" validate:"omitempty,oneof=3d_model audio"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
	File        *File  `json:"-"`
}

func (uc *UpdateContent) Validate(orig ARContent) error {
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)
	if err := core.Validate.Struct(uc); err != nil {
		return err
	}
	if uc.File != nil {
		typ := uc.Type
		if typ == "" {
			typ = orig.Type
		}
		return CheckFileExt(typ, *uc.File)
	}
	return nil
}

// QueryFilter narrows, orders and pages content listings.
type QueryFilter struct {
	Page       int    `query:"page"`
	PerPage    int    `query:"per_page"`
	Subject    string `query:"subject"`
	GradeLevel string `query:"gradeLevel"`
	Type       string `query:"type"`
	Status     string `query:"status"`
	Search     string `query:"search"`
	SortBy     string `query:"sortBy"`    // title | subject | gradeLevel | type | createdAt
	SortOrder  string `query:"sortOrder"` // asc (default) | desc
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// FileUpload is the receipt of a simulated file upload.
type FileUpload struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	FileType   string    `json:"fileType"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// QRCode is a generated (simulated) QR image reference for a content item.
type QRCode struct {
	ID          int       `json:"id"`
	ContentID   int       `json:"contentId"`
	Code        string    `json:"code"`
	ImageURL    string    `json:"imageUrl"`
	GeneratedAt time.Time `json:"generatedAt"`
}
