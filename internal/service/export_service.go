package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tripforge/travel-planner-go/internal/export"
	"github.com/tripforge/travel-planner-go/internal/models"
	"github.com/tripforge/travel-planner-go/internal/storage"
)

// ExportService renders itineraries to PDF files in the export store.
type ExportService struct {
	store *storage.ExportStore
	log   *zap.Logger
}

func NewExportService(store *storage.ExportStore, log *zap.Logger) *ExportService {
	return &ExportService{store: store, log: log}
}

// ExportPDF writes the travel guide to a freshly named file and returns
// its document reference. A failed render removes the partial file.
func (s *ExportService) ExportPDF(req models.ExportRequest) (storage.Document, error) {
	if len(req.Itinerary) == 0 {
		return storage.Document{}, &export.ExportError{Err: errors.New("itinerary day list is empty")}
	}

	f, doc, err := s.store.Create(req.City)
	if err != nil {
		return storage.Document{}, &export.ExportError{Err: err}
	}

	if err := export.WritePDF(f, req); err != nil {
		f.Close()
		if rmErr := s.store.Remove(doc); rmErr != nil {
			s.log.Warn("failed to remove partial export", zap.String("file", doc.FileName), zap.Error(rmErr))
		}
		return storage.Document{}, err
	}
	if err := f.Close(); err != nil {
		return storage.Document{}, &export.ExportError{Err: err}
	}

	s.log.Info("itinerary exported",
		zap.String("city", req.City),
		zap.String("file", doc.FileName),
		zap.Int("days", len(req.Itinerary)))
	return doc, nil
}
