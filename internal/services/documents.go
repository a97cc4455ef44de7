package services

import (
	"context"

	"github.com/localnerve/catalogdb/internal/localization"
	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// localizeRows fills the computed rows of every report in the culture carried by ctx
func localizeRows(ctx context.Context, reports ...*models.Report) {
	rows := localization.TranslateAll(localization.CultureFrom(ctx), localization.ReportRows)
	for _, r := range reports {
		r.Rows = append([]string(nil), rows...)
	}
}

func localizeReportList(ctx context.Context, reports []models.Report) []models.Report {
	for i := range reports {
		localizeRows(ctx, &reports[i])
	}
	return reports
}

// DocumentService manages documents and their reports.
// Deleting a document deletes its reports in the same transaction.
type DocumentService struct {
	*Repository[models.Document]
	reports *Children[models.Document, models.Report]
}

func newReportRepository(db *gorm.DB) *Repository[models.Report] {
	return NewRepository(db, "Report", func(dst, src *models.Report) {
		dst.Name = src.Name
		dst.Category = src.Category
	})
}

func newDocumentRepository(db *gorm.DB) *Repository[models.Document] {
	return NewRepository(db, "Document", func(dst, src *models.Document) {
		dst.Name = src.Name
		dst.Body = src.Body
	}).OnDelete(func(tx *gorm.DB, id uint) error {
		return tx.Where("document_id = ?", id).Delete(&models.Report{}).Error
	})
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	documents := newDocumentRepository(db)
	return &DocumentService{
		Repository: documents,
		reports: NewChildren(documents, newReportRepository(db), "document_id", func(r *models.Report, documentID uint) {
			r.DocumentID = documentID
		}),
	}
}

func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	return s.Find(ctx)
}

func (s *DocumentService) ListReports(ctx context.Context, documentID uint) ([]models.Report, error) {
	reports, err := s.reports.List(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return localizeReportList(ctx, reports), nil
}

func (s *DocumentService) GetReport(ctx context.Context, documentID, id uint) (*models.Report, error) {
	report, err := s.reports.Get(ctx, documentID, id)
	if err != nil {
		return nil, err
	}
	localizeRows(ctx, report)
	return report, nil
}

func (s *DocumentService) CreateReport(ctx context.Context, documentID uint, r *models.Report) error {
	if err := s.reports.Create(ctx, documentID, r); err != nil {
		return err
	}
	localizeRows(ctx, r)
	return nil
}

func (s *DocumentService) UpdateReport(ctx context.Context, documentID, id uint, r *models.Report) error {
	return s.reports.Update(ctx, documentID, id, r)
}

func (s *DocumentService) DeleteReport(ctx context.Context, documentID, id uint) error {
	return s.reports.Delete(ctx, documentID, id)
}

// ReportService serves reports outside of their document.
// Rows are localized on every read.
type ReportService struct {
	*Repository[models.Report]
	documents *Repository[models.Document]
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		Repository: newReportRepository(db),
		documents:  newDocumentRepository(db),
	}
}

func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	reports, err := s.Find(ctx)
	if err != nil {
		return nil, err
	}
	return localizeReportList(ctx, reports), nil
}

func (s *ReportService) Get(ctx context.Context, id uint) (*models.Report, error) {
	report, err := s.Repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	localizeRows(ctx, report)
	return report, nil
}

// Create stores a report. Its document id must reference an existing document.
func (s *ReportService) Create(ctx context.Context, r *models.Report) error {
	if err := s.documents.Exists(ctx, r.DocumentID); err != nil {
		return err
	}
	if err := s.Repository.Create(ctx, r); err != nil {
		return err
	}
	localizeRows(ctx, r)
	return nil
}
