package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-screen/internal/domain/resume"
	"talent-screen/internal/domain/screening"
	"talent-screen/internal/domain/scoring"
	"talent-screen/internal/repository"
)

// FileStore is the object-storage collaborator. Put returns a fetchable URL;
// Key reverses it back to the object key for downloads.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Key(fileURL string) (string, bool)
}

// TextExtractor turns an uploaded file into plain text.
type TextExtractor interface {
	Text(contentType, fileName string, data []byte) (string, error)
}

// ScreeningNotifier is told about every freshly scored resume.
type ScreeningNotifier interface {
	ScreeningCompleted(resumeID, jobID uuid.UUID, overallScore float64)
}

// CacheInvalidator drops cached aggregates after a write.
type CacheInvalidator interface {
	Delete(ctx context.Context, keys ...string) error
}

type UploadInput struct {
	FileName       string
	ContentType    string
	Data           []byte
	CandidateName  string
	CandidateEmail string
	JobID          uuid.UUID
}

type UploadOutput struct {
	Resume    resume.Resume
	Screening screening.Result
}

type ResumeUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (UploadOutput, error)
	ListResumes(ctx context.Context) ([]resume.Resume, error)
	DownloadFile(ctx context.Context, id uuid.UUID) (resume.Resume, []byte, error)
}

type Resume struct {
	resumes   repository.ResumeRepository
	jobs      repository.JobRepository
	files     FileStore
	extractor TextExtractor
	notifier  ScreeningNotifier
	cache     CacheInvalidator
	logger    *log.Logger
}

func NewResumeUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	files FileStore,
	extractor TextExtractor,
	notifier ScreeningNotifier,
	cache CacheInvalidator,
	logger *log.Logger,
) *Resume {
	if logger == nil {
		logger = log.Default()
	}
	return &Resume{
		resumes:   resumes,
		jobs:      jobs,
		files:     files,
		extractor: extractor,
		notifier:  notifier,
		cache:     cache,
		logger:    logger,
	}
}

// Upload runs the full intake pipeline: store the file, extract its text and
// skills, score it against the chosen job and persist resume and screening
// result in one transaction. The result is created in the same request; its
// match maps snapshot the job's skills and keywords as of now.
func (u *Resume) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (UploadOutput, error) {
	if userID == uuid.Nil {
		return UploadOutput{}, ErrInvalidInput
	}
	if len(in.Data) == 0 || strings.TrimSpace(in.CandidateName) == "" || in.JobID == uuid.Nil {
		return UploadOutput{}, ErrInvalidInput
	}
	if u.files == nil {
		return UploadOutput{}, ErrStorageUnavailable
	}

	jd, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return UploadOutput{}, ErrJobNotFound
		}
		return UploadOutput{}, err
	}

	key := objectKey(in.FileName)
	fileURL, err := u.files.Put(ctx, key, in.ContentType, in.Data)
	if err != nil {
		return UploadOutput{}, fmt.Errorf("upload failed: %w", err)
	}

	text, err := u.extractor.Text(in.ContentType, in.FileName, in.Data)
	if err != nil {
		// Keep the upload; score on the placeholder like any other text.
		u.logger.Printf("resume text extraction failed | file=%s error=%v", in.FileName, err)
		text = fmt.Sprintf("File: %s - unable to extract text content", in.FileName)
	}

	parsed := scoring.ParseResume(text)

	res := resume.Resume{
		ID:              uuid.New(),
		CandidateName:   strings.TrimSpace(in.CandidateName),
		CandidateEmail:  strings.TrimSpace(in.CandidateEmail),
		FileName:        in.FileName,
		FileURL:         fileURL,
		ExtractedText:   parsed.Text,
		ExtractedSkills: parsed.Skills,
		UploadedBy:      userID,
	}
	scored := scoring.Score(parsed.Skills, parsed.Text, jd.RequiredSkills, jd.Keywords, jd.SkillWeights)

	result := screening.Result{
		ID:             uuid.New(),
		ResumeID:       res.ID,
		JobID:          jd.ID,
		OverallScore:   scored.OverallScore,
		SkillMatches:   scored.SkillMatches,
		KeywordMatches: scored.KeywordMatches,
		MatchDetails:   scored.MatchDetails,
		Status:         screening.StatusPending,
		ScreenedBy:     userID,
	}
	if err := u.resumes.CreateWithScreening(ctx, res, result); err != nil {
		return UploadOutput{}, err
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, CacheKeyDashboardStats)
	}
	if u.notifier != nil {
		u.notifier.ScreeningCompleted(res.ID, jd.ID, result.OverallScore)
	}

	return UploadOutput{Resume: res, Screening: result}, nil
}

func (u *Resume) ListResumes(ctx context.Context) ([]resume.Resume, error) {
	return u.resumes.List(ctx)
}

// DownloadFile fetches the stored resume file along with its metadata.
func (u *Resume) DownloadFile(ctx context.Context, id uuid.UUID) (resume.Resume, []byte, error) {
	if id == uuid.Nil {
		return resume.Resume{}, nil, ErrInvalidInput
	}

	res, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, nil, ErrResumeNotFound
		}
		return resume.Resume{}, nil, err
	}

	if u.files == nil {
		return resume.Resume{}, nil, ErrStorageUnavailable
	}

	key, ok := u.files.Key(res.FileURL)
	if !ok {
		return resume.Resume{}, nil, fmt.Errorf("file url %q does not resolve to a stored object", res.FileURL)
	}

	data, err := u.files.Get(ctx, key)
	if err != nil {
		return resume.Resume{}, nil, err
	}
	return res, data, nil
}

func objectKey(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("resumes/%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
