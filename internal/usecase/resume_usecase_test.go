package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"talent-screen/internal/domain/job"
	"talent-screen/internal/domain/resume"
	"talent-screen/internal/domain/screening"
	"talent-screen/internal/repository"
)

type mockJobRepo struct {
	jobs map[uuid.UUID]job.JobDescription
	err  error
}

func (m *mockJobRepo) Create(_ context.Context, j job.JobDescription) error {
	if m.err != nil {
		return m.err
	}
	if m.jobs == nil {
		m.jobs = map[uuid.UUID]job.JobDescription{}
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.JobDescription, error) {
	if m.err != nil {
		return job.JobDescription{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return job.JobDescription{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListByCreator(_ context.Context, userID uuid.UUID) ([]job.JobDescription, error) {
	out := make([]job.JobDescription, 0)
	for _, j := range m.jobs {
		if j.CreatedBy == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.jobs)), nil
}

type mockResumeRepo struct {
	created    []resume.Resume
	screenings []screening.Result
	err        error

	// screeningErr fails the screening half of the intake; like the real
	// transaction, nothing is persisted.
	screeningErr error
}

func (m *mockResumeRepo) CreateWithScreening(_ context.Context, r resume.Resume, sr screening.Result) error {
	if m.err != nil {
		return m.err
	}
	if m.screeningErr != nil {
		return m.screeningErr
	}
	m.created = append(m.created, r)
	m.screenings = append(m.screenings, sr)
	return nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	for _, r := range m.created {
		if r.ID == id {
			return r, nil
		}
	}
	return resume.Resume{}, repository.ErrResumeNotFound
}

func (m *mockResumeRepo) List(_ context.Context) ([]resume.Resume, error) {
	return m.created, nil
}

func (m *mockResumeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.created)), nil
}

type mockScreeningRepo struct {
	created []screening.Result
	updates map[uuid.UUID]repository.ReviewUpdate
	avg     float64
	err     error
}

func (m *mockScreeningRepo) ListDetailed(_ context.Context) ([]repository.DetailedResult, error) {
	out := make([]repository.DetailedResult, 0, len(m.created))
	for _, r := range m.created {
		out = append(out, repository.DetailedResult{Result: r})
	}
	return out, nil
}

func (m *mockScreeningRepo) UpdateReview(_ context.Context, id uuid.UUID, upd repository.ReviewUpdate) error {
	if m.err != nil {
		return m.err
	}
	for _, r := range m.created {
		if r.ID == id {
			if m.updates == nil {
				m.updates = map[uuid.UUID]repository.ReviewUpdate{}
			}
			m.updates[id] = upd
			return nil
		}
	}
	return repository.ErrScreeningNotFound
}

func (m *mockScreeningRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.created)), nil
}

func (m *mockScreeningRepo) AverageScore(_ context.Context) (float64, error) {
	return m.avg, nil
}

const mockFileBaseURL = "https://files.example.com/"

type mockFileStore struct {
	files map[string][]byte
	err   error
}

func (m *mockFileStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[key] = data
	return mockFileBaseURL + key, nil
}

func (m *mockFileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.files[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (m *mockFileStore) Key(fileURL string) (string, bool) {
	key, ok := strings.CutPrefix(fileURL, mockFileBaseURL)
	return key, ok && key != ""
}

type mockExtractor struct {
	err error
}

func (m *mockExtractor) Text(_, _ string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return string(data), nil
}

type mockNotifier struct {
	events int
	score  float64
}

func (m *mockNotifier) ScreeningCompleted(_, _ uuid.UUID, overallScore float64) {
	m.events++
	m.score = overallScore
}

type mockCache struct {
	deleted []string
}

func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	m.deleted = append(m.deleted, keys...)
	return nil
}

func (m *mockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) { return false, nil }
func (m *mockCache) SetJSON(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

func uploadFixture() (*Resume, *mockJobRepo, *mockResumeRepo, *mockNotifier, uuid.UUID) {
	jobID := uuid.New()
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.JobDescription{
		jobID: {
			ID:             jobID,
			Title:          "Backend Engineer",
			RequiredSkills: []string{"Python", "SQL"},
			Keywords:       []string{"bachelor"},
			SkillWeights:   map[string]float64{},
		},
	}}
	resumes := &mockResumeRepo{}
	notifier := &mockNotifier{}

	uc := NewResumeUsecase(resumes, jobs, &mockFileStore{}, &mockExtractor{}, notifier, &mockCache{}, nil)
	return uc, jobs, resumes, notifier, jobID
}

func TestUpload_ScoresAgainstJob(t *testing.T) {
	uc, _, resumes, notifier, jobID := uploadFixture()

	out, err := uc.Upload(context.Background(), uuid.New(), UploadInput{
		FileName:       "cv.txt",
		ContentType:    "text/plain",
		Data:           []byte("Seasoned python developer, Bachelor of Science."),
		CandidateName:  "Ana",
		CandidateEmail: "ana@example.com",
		JobID:          jobID,
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if len(resumes.created) != 1 || len(resumes.screenings) != 1 {
		t.Fatalf("expected 1 resume and 1 screening, got %d/%d", len(resumes.created), len(resumes.screenings))
	}

	sc := out.Screening
	if sc.ResumeID != out.Resume.ID || sc.JobID != jobID {
		t.Fatal("screening must reference the uploaded resume and chosen job")
	}
	if sc.SkillMatches["Python"] != 1 || sc.SkillMatches["SQL"] != 0 {
		t.Fatalf("unexpected skill matches: %v", sc.SkillMatches)
	}
	// 0.5*70 + 100*0.3 with equal weights.
	if sc.OverallScore != 65.00 {
		t.Fatalf("expected overall 65.00, got %v", sc.OverallScore)
	}
	if sc.Status != screening.StatusPending {
		t.Fatalf("expected pending status, got %q", sc.Status)
	}

	if out.Resume.FileURL == "" || !strings.HasPrefix(out.Resume.FileURL, "https://files.example.com/resumes/") {
		t.Fatalf("unexpected file url: %q", out.Resume.FileURL)
	}
	if len(out.Resume.ExtractedSkills) != 1 || out.Resume.ExtractedSkills[0] != "python" {
		t.Fatalf("unexpected extracted skills: %v", out.Resume.ExtractedSkills)
	}

	if notifier.events != 1 || notifier.score != 65.00 {
		t.Fatalf("expected one notification with score 65.00, got %d/%v", notifier.events, notifier.score)
	}
}

func TestUpload_MissingFieldsRejected(t *testing.T) {
	uc, _, _, _, jobID := uploadFixture()
	ctx := context.Background()
	userID := uuid.New()

	cases := []UploadInput{
		{Data: nil, CandidateName: "Ana", JobID: jobID},
		{Data: []byte("x"), CandidateName: "", JobID: jobID},
		{Data: []byte("x"), CandidateName: "Ana", JobID: uuid.Nil},
	}
	for i, in := range cases {
		if _, err := uc.Upload(ctx, userID, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	if _, err := uc.Upload(ctx, uuid.Nil, cases[0]); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil user, got %v", err)
	}
}

func TestUpload_UnknownJob(t *testing.T) {
	uc, _, _, _, _ := uploadFixture()

	_, err := uc.Upload(context.Background(), uuid.New(), UploadInput{
		FileName:      "cv.txt",
		Data:          []byte("x"),
		CandidateName: "Ana",
		JobID:         uuid.New(),
	})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestUpload_ExtractionFailureFallsBackToPlaceholder(t *testing.T) {
	jobID := uuid.New()
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.JobDescription{
		jobID: {ID: jobID, Title: "x", RequiredSkills: []string{"python"}},
	}}
	resumes := &mockResumeRepo{}

	uc := NewResumeUsecase(resumes, jobs, &mockFileStore{},
		&mockExtractor{err: errors.New("unsupported file type")}, nil, nil, nil)

	out, err := uc.Upload(context.Background(), uuid.New(), UploadInput{
		FileName:      "cv.xyz",
		Data:          []byte{0x01, 0x02},
		CandidateName: "Ana",
		JobID:         jobID,
	})
	if err != nil {
		t.Fatalf("upload must survive extraction failure: %v", err)
	}
	if !strings.Contains(out.Resume.ExtractedText, "unable to extract text content") {
		t.Fatalf("expected placeholder text, got %q", out.Resume.ExtractedText)
	}
	if out.Screening.OverallScore != 0 {
		t.Fatalf("placeholder text must not match skills, got score %v", out.Screening.OverallScore)
	}
}

func TestUpload_StorageNotConfigured(t *testing.T) {
	uc := NewResumeUsecase(&mockResumeRepo{}, &mockJobRepo{}, nil, &mockExtractor{}, nil, nil, nil)

	_, err := uc.Upload(context.Background(), uuid.New(), UploadInput{
		FileName:      "cv.txt",
		Data:          []byte("x"),
		CandidateName: "Ana",
		JobID:         uuid.New(),
	})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestUpload_ScreeningFailureLeavesNoPartialState(t *testing.T) {
	jobID := uuid.New()
	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.JobDescription{
		jobID: {ID: jobID, Title: "x", RequiredSkills: []string{"python"}},
	}}
	resumes := &mockResumeRepo{screeningErr: errors.New("store unavailable")}
	notifier := &mockNotifier{}
	cache := &mockCache{}

	uc := NewResumeUsecase(resumes, jobs, &mockFileStore{}, &mockExtractor{}, notifier, cache, nil)

	_, err := uc.Upload(context.Background(), uuid.New(), UploadInput{
		FileName:      "cv.txt",
		Data:          []byte("python"),
		CandidateName: "Ana",
		JobID:         jobID,
	})
	if err == nil {
		t.Fatal("expected upload to fail when the screening write fails")
	}

	if len(resumes.created) != 0 || len(resumes.screenings) != 0 {
		t.Fatalf("no rows may survive a failed intake, got %d resumes / %d screenings",
			len(resumes.created), len(resumes.screenings))
	}
	if notifier.events != 0 {
		t.Fatalf("no notification may be sent for a failed intake, got %d", notifier.events)
	}
	if len(cache.deleted) != 0 {
		t.Fatalf("no cache invalidation for a failed intake, got %v", cache.deleted)
	}
}

func TestDownloadFile_RoundTrip(t *testing.T) {
	uc, _, resumes, _, jobID := uploadFixture()

	content := []byte("Seasoned python developer.")
	if _, err := uc.Upload(context.Background(), uuid.New(), UploadInput{
		FileName:      "cv.txt",
		ContentType:   "text/plain",
		Data:          content,
		CandidateName: "Ana",
		JobID:         jobID,
	}); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	res, data, err := uc.DownloadFile(context.Background(), resumes.created[0].ID)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if string(data) != string(content) {
		t.Fatalf("downloaded bytes differ: %q", data)
	}
	if res.FileName != "cv.txt" {
		t.Fatalf("unexpected metadata: %+v", res)
	}
}

func TestDownloadFile_UnknownResume(t *testing.T) {
	uc, _, _, _, _ := uploadFixture()

	if _, _, err := uc.DownloadFile(context.Background(), uuid.New()); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestDownloadFile_StorageNotConfigured(t *testing.T) {
	resumes := &mockResumeRepo{created: []resume.Resume{{ID: uuid.New(), FileURL: mockFileBaseURL + "resumes/x.txt"}}}
	uc := NewResumeUsecase(resumes, &mockJobRepo{}, nil, &mockExtractor{}, nil, nil, nil)

	if _, _, err := uc.DownloadFile(context.Background(), resumes.created[0].ID); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
