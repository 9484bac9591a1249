package content_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
	inmemdb "github.com/eskwela/admin/storage/database/inmem"
)

func setup(t *testing.T) *content.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return content.NewService(inmemdb.NewContentRepository(db), core.Latency{})
}

func newContent(title, subject, typ, fileName string) content.NewContent {
	return content.NewContent{
		Title:      title,
		Subject:    subject,
		GradeLevel: "Grade 3",
		Type:       typ,
		File:       content.File{Name: fileName, Size: 12 << 20, ContentType: "application/octet-stream"},
	}
}

func TestService_Create(t *testing.T) {
	svc := setup(t)

	item, err := svc.Create(newContent("Philippine Revolution", core.SubjectHistory, content.Type3DModel, "revolution.glb"))
	assert.NoError(t, err)
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "ESK_HIST_001", item.QRCode, "QR code is derived from subject and assigned id")
	assert.Equal(t, "/thumbnails/3d_model_1.jpg", item.Thumbnail)
	assert.Equal(t, core.StatusActive, item.Status)

	item, err = svc.Create(newContent("Solar System Sounds", core.SubjectScience, content.TypeAudio, "solar.mp3"))
	assert.NoError(t, err)
	assert.Equal(t, "ESK_SCIE_002", item.QRCode)
}

func TestService_Create_invalidFileExt(t *testing.T) {
	svc := setup(t)

	tests := []struct {
		name    string
		typ     string
		file    string
		wantErr string
	}{
		{"text file for 3d model", content.Type3DModel, "notes.txt", "Invalid file type. Expected .gltf or .glb for 3d_model"},
		{"glb for audio", content.TypeAudio, "model.glb", "Invalid file type. Expected .mp3 or .wav for audio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(newContent("Bad Upload", core.SubjectHistory, tt.typ, tt.file))
			assert.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestService_Update(t *testing.T) {
	svc := setup(t)
	item, err := svc.Create(newContent("Rizal Monument", core.SubjectHistory, content.Type3DModel, "rizal.glb"))
	assert.NoError(t, err)

	// changing the subject re-derives the QR code
	got, err := svc.Update(item.ID, content.UpdateContent{Subject: core.SubjectScience})
	assert.NoError(t, err)
	assert.Equal(t, "ESK_SCIE_001", got.QRCode)
	assert.Equal(t, item.Title, got.Title)

	_, err = svc.Update(999, content.UpdateContent{Title: "ghost"})
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Content not found")
}

func TestService_Delete(t *testing.T) {
	svc := setup(t)
	item, err := svc.Create(newContent("Volcano Model", core.SubjectScience, content.Type3DModel, "volcano.gltf"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(item.ID))
	assert.True(t, core.IsNotFound(svc.Delete(item.ID)))
}

func TestService_Upload_progress(t *testing.T) {
	svc := setup(t)

	var pcts []int
	up, err := svc.Upload(content.File{Name: "hero.glb", Size: 42 << 20, ContentType: "model/gltf-binary"}, func(pct int) {
		pcts = append(pcts, pct)
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, pcts)
	assert.NotEmpty(t, up.ID)
	assert.Equal(t, "/uploads/hero.glb", up.URL)
	assert.Equal(t, "hero.glb", up.FileName)
}

func TestService_GenerateQRCode(t *testing.T) {
	svc := setup(t)
	item, err := svc.Create(newContent("Mga Bayani", core.SubjectHistory, content.TypeAudio, "bayani.mp3"))
	assert.NoError(t, err)

	qr, err := svc.GenerateQRCode(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, item.ID, qr.ContentID)
	assert.Equal(t, item.QRCode, qr.Code)
	assert.Equal(t, "/qr-codes/"+item.QRCode+".png", qr.ImageURL)

	_, err = svc.GenerateQRCode(999)
	assert.True(t, core.IsNotFound(err))
}

func TestService_Query(t *testing.T) {
	svc := setup(t)
	for i := 0; i < 15; i++ {
		typ, file := content.Type3DModel, "m.glb"
		if i%2 == 1 {
			typ, file = content.TypeAudio, "a.mp3"
		}
		_, err := svc.Create(newContent("Item", core.SubjectScience, typ, file))
		assert.NoError(t, err)
	}

	items, pg, err := svc.Query(content.QueryFilter{})
	assert.NoError(t, err)
	assert.Len(t, items, 12, "content lists default to 12 per page")
	assert.Equal(t, 15, pg.Total)

	items, pg, err = svc.Query(content.QueryFilter{Type: content.TypeAudio})
	assert.NoError(t, err)
	assert.Equal(t, 7, pg.Total)
	for _, item := range items {
		assert.Equal(t, content.TypeAudio, item.Type)
	}
}

func TestGenerate_deterministic(t *testing.T) {
	a := content.Generate(rand.New(rand.NewSource(7)), 10)
	b := content.Generate(rand.New(rand.NewSource(7)), 10)

	assert.Len(t, a, 10)
	assert.Equal(t, a, b, "the same seed yields an identical pool, timestamps included")
	for i := range a {
		assert.Equal(t, i+1, a[i].ID)
		switch a[i].Type {
		case content.Type3DModel:
			assert.Equal(t, ".glb", content.File{Name: a[i].FileName}.Ext())
		case content.TypeAudio:
			assert.Equal(t, ".mp3", content.File{Name: a[i].FileName}.Ext())
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "12.0MB", content.FormatFileSize(12<<20))
	assert.Equal(t, "1.5MB", content.FormatFileSize(3<<20/2))
}
