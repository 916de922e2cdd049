package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"trackflow/internal/broker"
	"trackflow/internal/filestore"
	"trackflow/internal/models"
	"trackflow/internal/store"
	"trackflow/internal/util"

	"go.uber.org/zap"
)

// DocumentService binds uploaded files to leads and orders. The file is
// written before the record is inserted; a failed write aborts the whole
// attach, and a failed insert removes the freshly written file again.
type DocumentService struct {
	store  *store.Store
	files  *filestore.Local
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(store *store.Store, files *filestore.Local, events *broker.EventPublisher) *DocumentService {
	return &DocumentService{
		store:  store,
		files:  files,
		events: events,
		logger: util.GetLogger(),
	}
}

// DocumentInfo is the projection returned by document listings
type DocumentInfo struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// AttachDocument stores the uploaded content and records it against the
// given lead or order. Returns the document and its derived storage name.
func (s *DocumentService) AttachDocument(ctx context.Context, entityType string, entityID int64, originalName string, src io.Reader) (*models.Document, string, error) {
	ctx, span := util.StartSpan(ctx, "DocumentService.AttachDocument")
	defer span.End()

	if !models.ValidEntityType(entityType) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
	}

	name := storageName(entityType, entityID, originalName, time.Now())
	path, err := s.files.Save(name, src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to store upload: %w", err)
	}

	doc := &models.Document{
		Filename: originalName,
		FilePath: path,
	}
	if entityType == models.EntityTypeLead {
		doc.LeadID = &entityID
	} else {
		doc.OrderID = &entityID
	}

	if err := s.store.CreateDocument(ctx, doc); err != nil {
		if rmErr := s.files.Remove(path); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned upload", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, "", err
	}

	util.DocumentsUploadedTotal.WithLabelValues(entityType).Inc()
	s.logger.Info("Document uploaded",
		zap.Int64("document_id", doc.ID),
		zap.String("entity_type", entityType),
		zap.Int64("entity_id", entityID),
		zap.String("filename", name))

	if err := s.events.PublishDocumentUploaded(ctx, doc, entityType, entityID); err != nil {
		s.logger.Error("Failed to publish DocumentUploaded event", zap.Error(err))
	}
	return doc, name, nil
}

// ListDocuments returns the documents attached to a lead or an order. An
// entity with no documents yields an empty list.
func (s *DocumentService) ListDocuments(ctx context.Context, entityType string, entityID int64) ([]DocumentInfo, error) {
	ctx, span := util.StartSpan(ctx, "DocumentService.ListDocuments")
	defer span.End()

	if !models.ValidEntityType(entityType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
	}

	docs, err := s.store.GetDocumentsForEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	infos := make([]DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, DocumentInfo{
			ID:         doc.ID,
			Filename:   doc.Filename,
			FilePath:   doc.FilePath,
			UploadedAt: doc.UploadedAt,
		})
	}
	return infos, nil
}

// DeleteDocument removes the record and its underlying file. Content
// removal failures are logged and swallowed; the record always goes.
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "DocumentService.DeleteDocument")
	defer span.End()

	doc, err := s.store.GetDocumentByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Remove(doc.FilePath); err != nil {
		s.logger.Warn("Failed to remove document file",
			zap.Int64("document_id", id),
			zap.String("path", doc.FilePath),
			zap.Error(err))
	}

	if err := s.store.DeleteDocument(ctx, id); err != nil {
		return err
	}

	util.DocumentsDeletedTotal.Inc()
	s.logger.Info("Document deleted", zap.Int64("document_id", id))
	return nil
}

// storageName derives the stored filename from the owning entity and the
// upload time, keeping the original extension. Second granularity means two
// uploads for the same entity within one second can collide.
func storageName(entityType string, entityID int64, originalName string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s%s",
		entityType, entityID, now.Format("20060102_150405"), filepath.Ext(originalName))
}
