package reportservice

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/notify"
)

const (
	exportPrefix     = "activity_report_"
	exportTimeLayout = "20060102_150405"
	sinceLayout      = "2006-01-02 15:04"
	notAvailable     = "N/A"
	defaultFanOut    = 4

	deliveryMonthlyReport = "monthly_report"
	deliveryDailyReminder = "daily_reminder"
)

var exportHeader = []string{"ID", "User ID", "User Name", "Month", "Total Reservations", "Total Spent", "Most Used Lot ID"}

var exportName = regexp.MustCompile(`^activity_report_[0-9]{8}_[0-9]{6}\.csv$`)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice
type ActivityRepo interface {
	ListAllWithUser(ctx context.Context) ([]domain.ActivityExportRow, error)
	FindByUserMonth(ctx context.Context, userID int, month string) (*domain.ActivityReport, error)
}

type UserRepo interface {
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
}

type ReservationRepo interface {
	ListActiveSessions(ctx context.Context) ([]domain.ActiveSession, error)
}

// DeliveryRepo remembers which users already got a scheduled mail for a
// period, so a retried job only mails the rest.
type DeliveryRepo interface {
	ListDelivered(ctx context.Context, kind, period string) ([]int, error)
	MarkDelivered(ctx context.Context, kind string, userID int, period string) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, msg notify.Message) error
}

type Service struct {
	activityRepo    ActivityRepo
	userRepo        UserRepo
	reservationRepo ReservationRepo
	deliveryRepo    DeliveryRepo
	dispatcher      Dispatcher
	exportDir       string
	loc             *time.Location
	fanOut          int
	now             func() time.Time
}

func New(
	activityRepo ActivityRepo,
	userRepo UserRepo,
	reservationRepo ReservationRepo,
	deliveryRepo DeliveryRepo,
	dispatcher Dispatcher,
	exportDir string,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		activityRepo:    activityRepo,
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		deliveryRepo:    deliveryRepo,
		dispatcher:      dispatcher,
		exportDir:       exportDir,
		loc:             loc,
		fanOut:          defaultFanOut,
		now:             time.Now,
	}
}

// ExportCSV writes every activity report to a new CSV file in the export
// directory and returns the file name.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	rows, err := s.activityRepo.ListAllWithUser(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return "", err
	}
	for i, row := range rows {
		uname := notAvailable
		if row.Uname != nil {
			uname = *row.Uname
		}
		lot := notAvailable
		if row.MostUsedLotID != nil {
			lot = strconv.Itoa(*row.MostUsedLotID)
		}
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(row.UserID),
			uname,
			row.Month,
			strconv.Itoa(row.TotalReservations),
			strconv.FormatFloat(row.TotalSpent, 'f', 2, 64),
			lot,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	name := exportPrefix + s.now().In(s.loc).Format(exportTimeLayout) + ".csv"
	if err := s.writeFile(name, buf.Bytes()); err != nil {
		return "", err
	}
	zap.L().Info("activity reports exported", zap.String("file", name), zap.Int("rows", len(rows)))
	return name, nil
}

// ExportCSVFor runs ExportCSV on behalf of an admin.
func (s *Service) ExportCSVFor(ctx context.Context, id domain.Identity) (string, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return "", err
	}
	return s.ExportCSV(ctx)
}

// ExportPath resolves a previously exported CSV file.
func (s *Service) ExportPath(ctx context.Context, id domain.Identity, name string) (string, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return "", err
	}
	if !exportName.MatchString(name) {
		return "", domain.ErrInvalidArgument
	}
	path := filepath.Join(s.exportDir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return path, nil
}

// ReportMonth is the month covered by the monthly report: the calendar month
// before now. Activity rows are keyed by UTC month, so the month is picked in
// UTC as well, whatever time zone the job is scheduled in.
func (s *Service) ReportMonth() string {
	t := s.now().UTC()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0).Format(domain.MonthLayout)
}

// ReminderDay is the period key of the daily reminder, in the scheduler time zone.
func (s *Service) ReminderDay() string {
	return s.now().In(s.loc).Format(time.DateOnly)
}

func (s *Service) delivered(ctx context.Context, kind, period string) (map[int]bool, error) {
	userIDs, err := s.deliveryRepo.ListDelivered(ctx, kind, period)
	if err != nil {
		return nil, fmt.Errorf("list %s deliveries: %w", kind, err)
	}
	done := make(map[int]bool, len(userIDs))
	for _, id := range userIDs {
		done[id] = true
	}
	return done, nil
}

// markDelivered logs and drops errors; the mail is already sent.
func (s *Service) markDelivered(ctx context.Context, kind string, userID int, period string) {
	if err := s.deliveryRepo.MarkDelivered(ctx, kind, userID, period); err != nil {
		zap.L().Error("can't record delivery", zap.String("kind", kind), zap.Int("user_id", userID), zap.Error(err))
	}
}

type monthlyReportData struct {
	Uname        string
	Email        string
	Month        string
	Reservations int
	TotalSpent   string
	LotUsed      string
}

// MonthlyReport renders and mails last month's report to every active user.
// Failures are collected per user and do not stop the others. Users already
// mailed for the month are skipped, so a rerun only retries the failures.
func (s *Service) MonthlyReport(ctx context.Context) error {
	month := s.ReportMonth()
	users, err := s.userRepo.ListByRole(ctx, domain.RoleUser)
	if err != nil {
		return err
	}
	done, err := s.delivered(ctx, deliveryMonthlyReport, month)
	if err != nil {
		return err
	}

	var sent int
	var mu sync.Mutex
	err = s.fanOutEach(len(users), func(i int) error {
		user := users[i]
		if !user.Active || done[user.ID] {
			return nil
		}
		if err := s.sendMonthlyReport(ctx, user, month); err != nil {
			zap.L().Error("can't send monthly report", zap.Int("user_id", user.ID), zap.Error(err))
			return fmt.Errorf("user %d: %w", user.ID, err)
		}
		s.markDelivered(ctx, deliveryMonthlyReport, user.ID, month)
		mu.Lock()
		sent++
		mu.Unlock()
		return nil
	})
	zap.L().Info("monthly reports processed", zap.String("month", month),
		zap.Int("sent", sent), zap.Int("skipped", len(done)), zap.Int("users", len(users)))
	return err
}

func (s *Service) sendMonthlyReport(ctx context.Context, user domain.User, month string) error {
	report, err := s.activityRepo.FindByUserMonth(ctx, user.ID, month)
	if err != nil {
		return err
	}
	if report == nil {
		report = &domain.ActivityReport{UserID: user.ID, Month: month}
	}

	data := monthlyReportData{
		Uname:        user.Uname,
		Email:        user.Email,
		Month:        month,
		Reservations: report.TotalReservations,
		TotalSpent:   strconv.FormatFloat(report.TotalSpent, 'f', 2, 64),
		LotUsed:      notAvailable,
	}
	if report.MostUsedLotID != nil {
		data.LotUsed = strconv.Itoa(*report.MostUsedLotID)
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "monthly_report.html", data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	name := fmt.Sprintf("monthly_report_%d_%s.html", user.ID, month)
	if err := s.writeFile(name, body.Bytes()); err != nil {
		return err
	}

	msg := notify.NewMessage("Your Monthly Parking Report", user.Email, body.String(), filepath.Join(s.exportDir, name))
	return s.dispatcher.Dispatch(ctx, msg)
}

type reminderSession struct {
	VehicleNumber string
	Since         string
	SpotID        int
}

type reminderData struct {
	Uname    string
	Sessions []reminderSession
}

// DailyReminder mails every user who still has an open parking session,
// at most once per day.
func (s *Service) DailyReminder(ctx context.Context) error {
	sessions, err := s.reservationRepo.ListActiveSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}
	day := s.ReminderDay()
	done, err := s.delivered(ctx, deliveryDailyReminder, day)
	if err != nil {
		return err
	}

	var order []int
	byUser := make(map[int][]domain.ActiveSession)
	for _, session := range sessions {
		if done[session.UserID] {
			continue
		}
		if _, ok := byUser[session.UserID]; !ok {
			order = append(order, session.UserID)
		}
		byUser[session.UserID] = append(byUser[session.UserID], session)
	}

	err = s.fanOutEach(len(order), func(i int) error {
		userSessions := byUser[order[i]]
		data := reminderData{Uname: userSessions[0].Uname}
		for _, session := range userSessions {
			data.Sessions = append(data.Sessions, reminderSession{
				VehicleNumber: session.VehicleNumber,
				Since:         session.StartedAt.In(s.loc).Format(sinceLayout),
				SpotID:        session.SpotID,
			})
		}

		var body bytes.Buffer
		if err := templates.ExecuteTemplate(&body, "daily_reminder.html", data); err != nil {
			return fmt.Errorf("render reminder: %w", err)
		}
		msg := notify.NewMessage("Daily Parking Reminder - Active Sessions", userSessions[0].Email, body.String(), "")
		if err := s.dispatcher.Dispatch(ctx, msg); err != nil {
			zap.L().Error("can't send reminder", zap.Int("user_id", order[i]), zap.Error(err))
			return fmt.Errorf("user %d: %w", order[i], err)
		}
		s.markDelivered(ctx, deliveryDailyReminder, order[i], day)
		return nil
	})
	zap.L().Info("daily reminders processed", zap.String("day", day), zap.Int("users", len(order)), zap.Int("skipped", len(done)))
	return err
}

// fanOutEach runs fn for 0..n-1 with bounded concurrency and joins every error.
func (s *Service) fanOutEach(n int, fn func(i int) error) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(s.fanOut)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := fn(i); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// writeFile writes through a temp file and a rename, so readers never see a
// partial file.
func (s *Service) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.exportDir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.exportDir, name))
}
