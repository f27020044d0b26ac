package service

import (
	"bytes"
	"context"
	"time"

	"starter-pack-quiz/internal/config"
	"starter-pack-quiz/internal/domain"
	"starter-pack-quiz/internal/dto"
	"starter-pack-quiz/internal/excel"
	"starter-pack-quiz/internal/logger"
	"starter-pack-quiz/internal/util"
	"starter-pack-quiz/internal/validation"

	"go.uber.org/zap"
)

// ResponseRepository is the durable per-submission store.
type ResponseRepository interface {
	Save(resp *domain.Response) (string, error)
	Count() (int, error)
	ReadAll(ctx context.Context) ([]*domain.Response, error)
}

// WorkbookStore is the shared cumulative workbook the pipeline appends to
// on a best-effort basis.
type WorkbookStore interface {
	Append(resp *domain.Response) error
}

// SubmissionService implements the submission pipeline and the read-only
// aggregations over persisted responses.
type SubmissionService interface {
	Submit(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error)
	Stats(ctx context.Context) (int, error)
	// Export builds a fresh xlsx document from every valid record. A nil
	// buffer with a zero count means there is nothing to export yet.
	Export(ctx context.Context) (*bytes.Buffer, int, error)
}

type submissionService struct {
	repo      ResponseRepository
	workbook  WorkbookStore
	validator *validation.Validator
	loc       *time.Location
	now       func() time.Time
}

// NewSubmissionService wires the pipeline. The configured timezone is
// used for the display timestamp; an unknown zone falls back to UTC.
func NewSubmissionService(repo ResponseRepository, workbook WorkbookStore, cfg *config.Config) SubmissionService {
	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		logger.Get().Warn("Unknown timezone, falling back to UTC",
			zap.String("timezone", cfg.Server.Timezone))
		loc = time.UTC
	}
	return &submissionService{
		repo:      repo,
		workbook:  workbook,
		validator: validation.NewValidator(),
		loc:       loc,
		now:       time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error) {
	answers, items, verr := s.validator.ValidateSubmission(req)
	if verr != nil {
		return nil, verr
	}

	readableAnswers := make([]string, 0, len(answers))
	for i, idx := range answers {
		readableAnswers = append(readableAnswers, domain.OptionText(i, idx))
	}

	now := s.now()
	if ip == "" {
		ip = "unknown"
	}

	resp := &domain.Response{
		SessionID:         util.NewSessionID(),
		Username:          validation.Sanitize(req.Username, validation.MaxUsernameLen),
		Answers:           readableAnswers,
		RawAnswers:        answers,
		Items:             items,
		PersonalityType:   validation.CleanPersonalityType(req.PersonalityType),
		PersonalityName:   validation.Sanitize(req.PersonalityName, validation.MaxPersonalityNameLen),
		PersonalityScores: validation.CleanScores(req.PersonalityScores),
		Suggestion:        validation.Sanitize(req.Suggestion, validation.MaxSuggestionLen),
		Timestamp:         now.In(s.loc).Format("02/01/2006 15:04:05"),
		SubmittedAt:       now.UTC(),
		IP:                ip,
	}

	// Primary write: the JSON record is the system of record, a failure
	// here fails the whole request.
	filename, err := s.repo.Save(resp)
	if err != nil {
		logger.Get().Error("Submit failed", zap.Error(err))
		return nil, domain.NewPersistenceError("Failed to save response", err)
	}

	// Secondary write: the shared workbook is a convenience view that may
	// be locked by an external viewer. Never fail the request over it.
	if err := s.workbook.Append(resp); err != nil {
		logger.Get().Warn("Workbook locked - saved to JSON only",
			zap.String("user", resp.Username),
			zap.Error(err))
	} else {
		logger.Get().Info("Saved to workbook & JSON",
			zap.String("user", resp.Username),
			zap.String("file", filename))
	}

	return &dto.SubmitResponse{
		Success: true,
		Message: "Response saved. Thanks for playing! 🎉",
	}, nil
}

func (s *submissionService) Stats(ctx context.Context) (int, error) {
	count, err := s.repo.Count()
	if err != nil {
		return 0, domain.NewInternalError("Failed to read responses", err)
	}
	return count, nil
}

func (s *submissionService) Export(ctx context.Context) (*bytes.Buffer, int, error) {
	responses, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, 0, domain.NewInternalError("Failed to read responses", err)
	}
	if len(responses) == 0 {
		return nil, 0, nil
	}

	buf, err := excel.BuildExport(responses)
	if err != nil {
		return nil, 0, domain.NewInternalError("Failed to build export", err)
	}
	return buf, len(responses), nil
}
