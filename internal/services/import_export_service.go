package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/trivia-hub/trivia-service/internal/repositories"
	"github.com/trivia-hub/trivia-service/internal/utils"
	"github.com/trivia-hub/trivia-service/internal/validator"
)

// questionColumns is the header row shared by CSV and Excel files.
var questionColumns = []string{"question", "answer", "category", "difficulty"}

const exportSheetName = "Questions"

// ImportExportService handles bulk question transfer through CSV and
// Excel files.
type ImportExportService interface {
	// Import operations
	ImportQuestionsFromFile(ctx context.Context, file multipart.File, filename string) (*ImportResult, error)
	ImportQuestionsFromCSV(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error)

	// Export operations
	ExportQuestionsToCSV(ctx context.Context) ([]byte, error)
	ExportQuestionsToExcel(ctx context.Context) ([]byte, error)
}

// RowError records why a single file row was rejected.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult summarizes one import run. Rejected rows never reach
// the store; accepted rows are inserted one by one.
type ImportResult struct {
	TotalRows    int        `json:"total_rows"`
	SuccessCount int        `json:"success_count"`
	ErrorCount   int        `json:"error_count"`
	Errors       []RowError `json:"errors,omitempty"`
	QuestionIDs  []uint     `json:"question_ids,omitempty"`
}

type importExportService struct {
	repo      repositories.Repository
	question  QuestionService
	logger    utils.Logger
	validator *validator.Validator
}

func NewImportExportService(
	repo repositories.Repository,
	questionService QuestionService,
	logger utils.Logger,
	v *validator.Validator,
) ImportExportService {
	return &importExportService{
		repo:      repo,
		question:  questionService,
		logger:    logger,
		validator: v,
	}
}

// ===== IMPORT OPERATIONS =====

func (s *importExportService) ImportQuestionsFromFile(ctx context.Context, file multipart.File, filename string) (*ImportResult, error) {
	s.logger.InfoContext(ctx, "starting question import", "filename", filename)

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return s.ImportQuestionsFromCSV(ctx, file)
	case ".xlsx", ".xls":
		return s.ImportQuestionsFromExcel(ctx, file)
	default:
		return nil, NewValidationError("file", "unsupported file format", ext)
	}
}

func (s *importExportService) ImportQuestionsFromCSV(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, NewValidationError("file", "file must have a header row and at least one data row", len(records))
	}

	headerMap, err := parseHeader(records[0])
	if err != nil {
		return nil, err
	}

	return s.importRows(ctx, records[1:], headerMap)
}

func (s *importExportService) ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, NewValidationError("file", "file must have a header row and at least one data row", len(rows))
	}

	headerMap, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	return s.importRows(ctx, rows[1:], headerMap)
}

func parseHeader(header []string) (map[string]int, error) {
	headerMap := make(map[string]int, len(header))
	for i, name := range header {
		headerMap[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range questionColumns {
		if _, exists := headerMap[col]; !exists {
			return nil, NewValidationError("headers", fmt.Sprintf("missing required column: %s", col), col)
		}
	}
	return headerMap, nil
}

func (s *importExportService) importRows(ctx context.Context, rows [][]string, headerMap map[string]int) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows)}

	for rowIndex, row := range rows {
		// +2 accounts for the header row and 1-based spreadsheet rows.
		rowNumber := rowIndex + 2

		req, rowErr := parseQuestionRow(row, headerMap, rowNumber)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.ErrorCount++
			continue
		}

		id, err := s.question.Create(ctx, req)
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row:     rowNumber,
				Message: err.Error(),
			})
			result.ErrorCount++
			continue
		}

		result.QuestionIDs = append(result.QuestionIDs, id)
		result.SuccessCount++
	}

	s.logger.InfoContext(ctx, "question import finished",
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)

	return result, nil
}

func parseQuestionRow(row []string, headerMap map[string]int, rowNumber int) (*CreateQuestionRequest, *RowError) {
	cell := func(column string) string {
		idx := headerMap[column]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	question := cell("question")
	if question == "" {
		return nil, &RowError{Row: rowNumber, Field: "question", Message: "is required"}
	}
	answer := cell("answer")
	if answer == "" {
		return nil, &RowError{Row: rowNumber, Field: "answer", Message: "is required"}
	}

	category, err := strconv.ParseUint(cell("category"), 10, 32)
	if err != nil {
		return nil, &RowError{Row: rowNumber, Field: "category", Message: "must be a category id"}
	}
	difficulty, err := strconv.Atoi(cell("difficulty"))
	if err != nil {
		return nil, &RowError{Row: rowNumber, Field: "difficulty", Message: "must be an integer between 1 and 5"}
	}

	categoryID := uint(category)
	return &CreateQuestionRequest{
		Question:   &question,
		Answer:     &answer,
		Category:   &categoryID,
		Difficulty: &difficulty,
	}, nil
}

// ===== EXPORT OPERATIONS =====

func (s *importExportService) ExportQuestionsToCSV(ctx context.Context) ([]byte, error) {
	questions, err := s.repo.Question().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(append([]string{"id"}, questionColumns...)); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Answer,
			strconv.FormatUint(uint64(q.CategoryID), 10),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *importExportService) ExportQuestionsToExcel(ctx context.Context) ([]byte, error) {
	questions, err := s.repo.Question().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	index, err := workbook.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	workbook.SetActiveSheet(index)
	workbook.DeleteSheet("Sheet1")

	header := append([]string{"id"}, questionColumns...)
	for col, name := range header {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell name: %w", err)
		}
		if err := workbook.SetCellValue(exportSheetName, cellName, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, q := range questions {
		values := []interface{}{q.ID, q.Question, q.Answer, q.CategoryID, q.Difficulty}
		for col, value := range values {
			cellName, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell name: %w", err)
			}
			if err := workbook.SetCellValue(exportSheetName, cellName, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
