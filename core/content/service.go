package content

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/eskwela/admin/core"
)

var ErrNotFound = core.NewNotFoundError("Content not found")

// Simulated latencies. Creates that carry a file take longer, like a real
// upload would.
const (
	lookupDelay = 300 * time.Millisecond
	listDelay   = 500 * time.Millisecond
	createDelay = 1200 * time.Millisecond
	updateDelay = 800 * time.Millisecond
	deleteDelay = 400 * time.Millisecond

	uploadDelay     = 1000 * time.Millisecond
	uploadStepDelay = 100 * time.Millisecond
)

type (
	Repository interface {
		CreateContent(item ARContent) (ARContent, error)
		GetContentByID(id int) (ARContent, error)
		// FilterContent applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on Title or Description.
		FilterContent(filter QueryFilter) ([]ARContent, error)
		UpdateContent(item ARContent) (ARContent, error)
		DeleteContentByID(id int) error
		CountContent() (total, active int, err error)
	}

	Service struct {
		repo Repository
		lat  core.Latency
	}
)

func NewService(repo Repository, lat core.Latency) *Service {
	return &Service{repo: repo, lat: lat}
}

// Create validates nc (including the file-extension allow-list for the
// declared type) and stores the new content item. The QR code is derived
// from the subject and the assigned id.
func (svc *Service) Create(nc NewContent) (ARContent, error) {
	svc.lat.Sleep(createDelay)

	if err := nc.Validate(); err != nil {
		return ARContent{}, err
	}

	now := time.Now().UTC()
	item := ARContent{
		Title:       nc.Title,
		Description: nc.Description,
		Subject:     nc.Subject,
		GradeLevel:  nc.GradeLevel,
		Type:        nc.Type,
		FileURL:     "/content/" + nc.File.Name,
		FileName:    nc.File.Name,
		FileSize:    FormatFileSize(nc.File.Size),
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      core.StatusActive,
	}
	item, err := svc.repo.CreateContent(item)
	if err != nil {
		return ARContent{}, err
	}
	// the QR code embeds the assigned id
	item.QRCode = QRCodeFor(item.Subject, item.ID)
	item.Thumbnail = thumbnailFor(item.Type, item.ID)
	return svc.repo.UpdateContent(item)
}

func (svc *Service) GetByID(id int) (ARContent, error) {
	svc.lat.Sleep(lookupDelay)
	return svc.repo.GetContentByID(id)
}

// Query runs the filter -> sort -> paginate pipeline over the content pool.
func (svc *Service) Query(filter QueryFilter) ([]ARContent, core.Pagination, error) {
	svc.lat.Sleep(listDelay)

	filter.Clean()
	items, err := svc.repo.FilterContent(filter)
	if err != nil {
		return nil, core.Pagination{}, err
	}
	sortContent(items, filter.SortBy, filter.SortOrder)

	perPage := filter.PerPage
	if perPage < 1 {
		perPage = core.ContentPageSize
	}
	page, pg := core.Paginate(items, filter.Page, perPage)
	return page, pg, nil
}

// Update merges the set fields of uc into the stored content item and bumps
// UpdatedAt. A new file re-validates against the (possibly updated) type.
func (svc *Service) Update(id int, uc UpdateContent) (ARContent, error) {
	svc.lat.Sleep(updateDelay)

	item, err := svc.repo.GetContentByID(id)
	if err != nil {
		return ARContent{}, err
	}
	if err = uc.Validate(item); err != nil {
		return ARContent{}, err
	}
	if uc.Title != "" {
		item.Title = uc.Title
	}
	if uc.Description != "" {
		item.Description = uc.Description
	}
	if uc.Subject != "" {
		item.Subject = uc.Subject
		item.QRCode = QRCodeFor(item.Subject, item.ID)
	}
	if uc.GradeLevel != "" {
		item.GradeLevel = uc.GradeLevel
	}
	if uc.Type != "" {
		item.Type = uc.Type
	}
	if uc.Status != "" {
		item.Status = uc.Status
	}
	if uc.File != nil {
		item.FileName = uc.File.Name
		item.FileURL = "/content/" + uc.File.Name
		item.FileSize = FormatFileSize(uc.File.Size)
	}
	item.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateContent(item)
}

// Delete removes the content item; a second call for the same id returns
// ErrNotFound.
func (svc *Service) Delete(id int) error {
	svc.lat.Sleep(deleteDelay)
	return svc.repo.DeleteContentByID(id)
}

// Upload simulates storing a file. When onProgress is supplied it is
// invoked at 10% increments with a short pause between each; otherwise the
// call sleeps once for the full upload duration.
func (svc *Service) Upload(f File, onProgress func(pct int)) (FileUpload, error) {
	if onProgress == nil {
		svc.lat.Sleep(uploadDelay)
	} else {
		svc.lat.SleepSteps(uploadDelay, uploadStepDelay, onProgress)
	}
	return FileUpload{
		ID:         uuid.New().String(),
		FileName:   f.Name,
		FileSize:   f.Size,
		FileType:   f.ContentType,
		URL:        "/uploads/" + f.Name,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// GenerateQRCode produces a (simulated) QR image reference for the content item.
func (svc *Service) GenerateQRCode(contentID int) (QRCode, error) {
	svc.lat.Sleep(lookupDelay)

	item, err := svc.repo.GetContentByID(contentID)
	if err != nil {
		return QRCode{}, err
	}
	return QRCode{
		ID:          item.ID,
		ContentID:   item.ID,
		Code:        item.QRCode,
		ImageURL:    "/qr-codes/" + item.QRCode + ".png",
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func thumbnailFor(typ string, id int) string {
	return "/thumbnails/" + typ + "_" + strconv.Itoa(id) + ".jpg"
}

func sortContent(items []ARContent, sortBy, sortOrder string) {
	var less func(a, b ARContent) bool
	switch sortBy {
	case "title":
		less = func(a, b ARContent) bool { return core.LessStrings(a.Title, b.Title) }
	case "subject":
		less = func(a, b ARContent) bool { return core.LessStrings(a.Subject, b.Subject) }
	case "gradeLevel":
		less = func(a, b ARContent) bool { return core.LessStrings(a.GradeLevel, b.GradeLevel) }
	case "type":
		less = func(a, b ARContent) bool { return core.LessStrings(a.Type, b.Type) }
	case "createdAt":
		less = func(a, b ARContent) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if sortOrder == core.SortDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
