package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/utils"
)

const (
	StudentsKey = "face_track_db_students_v2"
	LogsKey     = "face_track_db_logs_v2"

	DefaultGrade     = "10th Grade"
	DefaultThreshold = 75

	TimestampLayout = "1/2/2006, 3:04:05 PM"
	LastSeenLayout  = "Jan 2, 3:04 PM"
)

// Storage holds whole serialized collections by key.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, values map[string][]byte) error
}

// Delays are the artificial per-operation latencies of the demo backend.
type Delays struct {
	Students time.Duration
	Logs     time.Duration
	Reset    time.Duration
	Clear    time.Duration
	Register time.Duration
	Record   time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Students: 200 * time.Millisecond,
		Logs:     150 * time.Millisecond,
		Reset:    time.Second,
		Clear:    500 * time.Millisecond,
		Register: 800 * time.Millisecond,
		Record:   400 * time.Millisecond,
	}
}

type Options struct {
	Delays    Delays
	Location  *time.Location
	LateAfter string // HH:MM, empty disables Late
	Threshold int
	Now       func() time.Time
}

// Service is the storage-backed attendance API. Every mutation reads the
// full collections, changes them in memory and writes them back whole.
type Service struct {
	store     Storage
	mu        sync.Mutex
	delays    Delays
	loc       *time.Location
	lateAfter int // minutes since midnight, -1 when disabled
	threshold int
	now       func() time.Time
}

type NewStudent struct {
	ID       string
	Name     string
	Grade    string
	PhotoURL string
}

// CheckIn is the outcome of a successful RecordAttendance.
type CheckIn struct {
	Student models.Student       `json:"student"`
	Log     models.AttendanceLog `json:"log"`
}

func NewService(store Storage, opts Options) (*Service, error) {
	s := &Service{
		store:     store,
		delays:    opts.Delays,
		loc:       opts.Location,
		lateAfter: -1,
		threshold: opts.Threshold,
		now:       opts.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.threshold <= 0 || s.threshold > 100 {
		s.threshold = DefaultThreshold
	}
	if v := strings.TrimSpace(opts.LateAfter); v != "" {
		t, err := time.Parse("15:04", v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid late cutoff %q", v)
		}
		s.lateAfter = t.Hour()*60 + t.Minute()
	}
	return s, nil
}

func (s *Service) Threshold() int {
	return s.threshold
}

func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// GetStudents returns the roster, persisting the demo roster on first use.
func (s *Service) GetStudents(ctx context.Context) ([]models.Student, error) {
	if err := wait(ctx, s.delays.Students); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadStudents(ctx)
}

// GetLogs returns every log, newest first.
func (s *Service) GetLogs(ctx context.Context) ([]models.AttendanceLog, error) {
	if err := wait(ctx, s.delays.Logs); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLogs(ctx)
}

func (s *Service) ResetToDefaults(ctx context.Context) error {
	if err := wait(ctx, s.delays.Reset); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, DefaultRoster(), []models.AttendanceLog{})
}

func (s *Service) ClearDatabase(ctx context.Context) error {
	if err := wait(ctx, s.delays.Clear); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, []models.Student{}, []models.AttendanceLog{})
}

// RegisterStudent appends a student with zeroed counters. An empty or
// already used id is replaced by a fresh STU#### id.
func (s *Service) RegisterStudent(ctx context.Context, in NewStudent) (models.Student, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Student{}, ErrInvalidStudent
	}
	if err := wait(ctx, s.delays.Register); err != nil {
		return models.Student{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	students, err := s.loadStudents(ctx)
	if err != nil {
		return models.Student{}, err
	}
	taken := make(map[string]struct{}, len(students))
	for _, st := range students {
		taken[st.ID] = struct{}{}
	}

	id := strings.TrimSpace(in.ID)
	if _, dup := taken[id]; dup || id == "" {
		id, err = utils.UniqueStudentID(func(c string) bool {
			_, ok := taken[c]
			return ok
		}, 0)
		if err != nil {
			return models.Student{}, errors.Wrap(err, "generate student id")
		}
	}

	grade := strings.TrimSpace(in.Grade)
	if grade == "" {
		grade = DefaultGrade
	}
	student := models.Student{
		ID:       id,
		Name:     name,
		Grade:    grade,
		PhotoURL: in.PhotoURL,
	}
	students = append(students, student)
	if err := s.saveStudents(ctx, students); err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// RecordAttendance increments the student's counters and prepends a log.
// Both collections stay untouched when the id is unknown.
func (s *Service) RecordAttendance(ctx context.Context, studentID, method string) (CheckIn, error) {
	if !models.IsValidMethod(method) {
		return CheckIn{}, ErrInvalidMethod
	}
	if err := wait(ctx, s.delays.Record); err != nil {
		return CheckIn{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	students, err := s.loadStudents(ctx)
	if err != nil {
		return CheckIn{}, err
	}
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return CheckIn{}, err
	}

	idx := -1
	for i, st := range students {
		if st.ID == studentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return CheckIn{}, errors.Wrapf(ErrStudentNotFound, "id %q", studentID)
	}

	now := s.now().In(s.loc)
	student := students[idx]
	student.ClassesAttended++
	student.TotalClasses++
	student.AttendancePercentage = models.Percentage(student.ClassesAttended, student.TotalClasses)
	student.LastSeen = now.Format(LastSeenLayout)

	entry := s.newLog(now, studentID, student.Name, method, s.statusAt(now))

	students[idx] = student
	logs = append([]models.AttendanceLog{entry}, logs...)
	if err := s.save(ctx, students, logs); err != nil {
		return CheckIn{}, err
	}
	return CheckIn{Student: student, Log: entry}, nil
}

// RecordSpoofAttempt prepends a Spoof Attempt log for a rejected scan. The
// roster is not modified.
func (s *Service) RecordSpoofAttempt(ctx context.Context, res models.RecognitionResponse) (models.AttendanceLog, error) {
	if err := wait(ctx, s.delays.Record); err != nil {
		return models.AttendanceLog{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	students, err := s.loadStudents(ctx)
	if err != nil {
		return models.AttendanceLog{}, err
	}
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return models.AttendanceLog{}, err
	}

	var studentID string
	name := strings.TrimSpace(res.Name)
	if matched := res.MatchedID(); matched != "" {
		for _, st := range students {
			if st.ID == matched {
				studentID, name = st.ID, st.Name
				break
			}
		}
	}
	if name == "" {
		name = "Unknown"
	}

	entry := s.newLog(s.now().In(s.loc), studentID, name, models.MethodFaceRecognition, models.StatusSpoof)
	logs = append([]models.AttendanceLog{entry}, logs...)
	if err := s.saveLogs(ctx, logs); err != nil {
		return models.AttendanceLog{}, err
	}
	return entry, nil
}

// Dashboard computes the overview for the current local day from one
// consistent snapshot of both collections.
func (s *Service) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	if err := wait(ctx, s.delays.Students+s.delays.Logs); err != nil {
		return models.DashboardStats{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	students, err := s.loadStudents(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return ComputeStats(students, logs, s.Now(), s.threshold), nil
}

func (s *Service) newLog(now time.Time, studentID, name, method, status string) models.AttendanceLog {
	return models.AttendanceLog{
		ID:          fmt.Sprintf("LOG_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		StudentID:   studentID,
		StudentName: name,
		Timestamp:   now.Format(TimestampLayout),
		RecordedAt:  now.UTC(),
		Method:      method,
		Status:      status,
	}
}

func (s *Service) statusAt(now time.Time) string {
	if s.lateAfter >= 0 && now.Hour()*60+now.Minute() > s.lateAfter {
		return models.StatusLate
	}
	return models.StatusPresent
}

func (s *Service) loadStudents(ctx context.Context) ([]models.Student, error) {
	raw, ok, err := s.store.Load(ctx, StudentsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := DefaultRoster()
		if err := s.saveStudents(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	students := []models.Student{}
	if err := json.Unmarshal(raw, &students); err != nil {
		return nil, errors.Wrap(err, "decode students")
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

func (s *Service) loadLogs(ctx context.Context) ([]models.AttendanceLog, error) {
	raw, ok, err := s.store.Load(ctx, LogsKey)
	if err != nil {
		return nil, err
	}
	logs := []models.AttendanceLog{}
	if !ok {
		return logs, nil
	}
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, errors.Wrap(err, "decode logs")
	}
	if logs == nil {
		logs = []models.AttendanceLog{}
	}
	return logs, nil
}

func (s *Service) saveStudents(ctx context.Context, students []models.Student) error {
	raw, err := json.Marshal(students)
	if err != nil {
		return errors.Wrap(err, "encode students")
	}
	return s.store.Save(ctx, map[string][]byte{StudentsKey: raw})
}

func (s *Service) saveLogs(ctx context.Context, logs []models.AttendanceLog) error {
	raw, err := json.Marshal(logs)
	if err != nil {
		return errors.Wrap(err, "encode logs")
	}
	return s.store.Save(ctx, map[string][]byte{LogsKey: raw})
}

func (s *Service) save(ctx context.Context, students []models.Student, logs []models.AttendanceLog) error {
	rawStudents, err := json.Marshal(students)
	if err != nil {
		return errors.Wrap(err, "encode students")
	}
	rawLogs, err := json.Marshal(logs)
	if err != nil {
		return errors.Wrap(err, "encode logs")
	}
	return s.store.Save(ctx, map[string][]byte{
		StudentsKey: rawStudents,
		LogsKey:     rawLogs,
	})
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
