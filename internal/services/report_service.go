package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edublog/blog-service/internal/repositories"
)

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// UsersWorkbook exports all users (sanitized) as an XLSX sheet.
func (s *reportService) UsersWorkbook(ctx context.Context) ([]byte, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Usuarios"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []interface{}{"ID", "Nome", "Email", "Tipo", "Série", "Disciplina", "Criado em"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range users {
		u := &users[i]
		row := []interface{}{
			u.ID,
			u.Nome,
			u.Email,
			string(u.UserType),
			deref(u.Serie),
			deref(u.Subject),
			u.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write user row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("users workbook generated", "rows", len(users))
	return buf.Bytes(), nil
}

// PostsWorkbook exports all posts with author identity as an XLSX sheet.
func (s *reportService) PostsWorkbook(ctx context.Context) ([]byte, error) {
	posts, err := s.repo.Post().List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Posts"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []interface{}{"ID", "Título", "Autor", "Criado em", "Editado em"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range posts {
		p := &posts[i]
		author := ""
		if p.CreatedBy != nil {
			author = p.CreatedBy.Nome
		}
		editedAt := ""
		if p.EditedAt != nil {
			editedAt = p.EditedAt.Format(time.RFC3339)
		}
		row := []interface{}{
			p.ID,
			p.Title,
			author,
			p.CreatedAt.Format(time.RFC3339),
			editedAt,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write post row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("posts workbook generated", "rows", len(posts))
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
