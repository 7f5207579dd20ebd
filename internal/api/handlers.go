// Package api exposes HTTP handlers for the points service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"example.com/healthpoints/internal/catalog"
	"example.com/healthpoints/internal/events"
	"example.com/healthpoints/internal/ledger"
	"example.com/healthpoints/internal/observability"
	"example.com/healthpoints/internal/scoring"
)

// Publisher emits ledger events to the points feed. A nil Publisher disables
// event publishing without affecting request handling.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload interface{}) error
}

// Handler coordinates HTTP requests with the ledger.
type Handler struct {
	ledger    *ledger.Ledger
	publisher Publisher
	logger    *log.Logger
}

// NewHandler builds a Handler. publisher may be nil.
func NewHandler(led *ledger.Ledger, publisher Publisher) *Handler {
	return &Handler{
		ledger:    led,
		publisher: publisher,
		logger:    log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/activities", h.activities)
	mux.HandleFunc("/v1/transactions", h.transactions)
	mux.HandleFunc("/v1/points", h.points)
	mux.HandleFunc("/v1/achievements", h.achievements)
	mux.HandleFunc("/v1/metrics/daily", h.dailyMetrics)
	mux.HandleFunc("/v1/metrics/weekly", h.weeklyMetrics)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.recordActivity(w, r)
	case http.MethodGet:
		h.listActivities(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) recordActivity(w http.ResponseWriter, r *http.Request) {
	var req RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	kind, err := req.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	activity, unlocked := h.ledger.RecordActivity(kind, req.Amount, req.DurationMin)

	total := h.ledger.TotalPoints()
	observability.RecordTransaction(observability.SourceActivity, total, activity.OccurredAt)
	for range unlocked {
		observability.RecordTransaction(observability.SourceAchievement, total, activity.OccurredAt)
		observability.RecordAchievementUnlocked()
	}

	h.publish(r.Context(), events.TypeActivityRecorded, activity.ID, events.ActivityRecorded{
		ActivityID:  activity.ID,
		Kind:        string(activity.Kind),
		Amount:      activity.Amount,
		DurationMin: activity.DurationMin,
		Points:      activity.Points,
		OccurredAt:  activity.OccurredAt,
	})
	for _, granted := range unlocked {
		h.publish(r.Context(), events.TypeAchievementUnlocked, granted.ID, events.AchievementUnlocked{
			AchievementID: granted.ID,
			Title:         granted.Title,
			Description:   granted.Description,
			Icon:          granted.Icon,
			Points:        granted.Points,
			UnlockedAt:    granted.UnlockedAt,
		})
	}

	resp := RecordActivityResponse{
		Activity:    toActivityView(activity),
		TotalPoints: total,
	}
	for _, granted := range unlocked {
		resp.Unlocked = append(resp.Unlocked, toAchievementView(granted))
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	items := h.ledger.Activities()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed < len(items) {
			items = items[len(items)-parsed:]
		}
	}

	views := make([]ActivityView, 0, len(items))
	for _, activity := range items {
		views = append(views, toActivityView(activity))
	}
	writeJSON(w, http.StatusOK, ListActivitiesResponse{Items: views})
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	tx := h.ledger.RecordTransaction(req.Title, req.Points, req.Icon)
	total := h.ledger.TotalPoints()
	observability.RecordTransaction(observability.SourceDirect, total, tx.OccurredAt)

	h.publish(r.Context(), events.TypePointsAwarded, tx.ID, events.PointsAwarded{
		TransactionID: tx.ID,
		Title:         tx.Title,
		Points:        tx.Points,
		Icon:          tx.Icon,
		TotalPoints:   total,
		OccurredAt:    tx.OccurredAt,
	})

	writeJSON(w, http.StatusCreated, RecordTransactionResponse{
		Transaction: toTransactionView(tx),
		TotalPoints: total,
	})
}

func (h *Handler) points(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	transactions := h.ledger.Transactions()
	views := make([]TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, toTransactionView(tx))
	}
	writeJSON(w, http.StatusOK, PointsResponse{
		TotalPoints:  h.ledger.TotalPoints(),
		Transactions: views,
	})
}

func (h *Handler) achievements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var items []ledger.Achievement
	if r.URL.Query().Get("recent") == "true" {
		items = h.ledger.RecentAchievements()
	} else {
		items = h.ledger.Achievements()
	}

	views := make([]AchievementView, 0, len(items))
	for _, achievement := range items {
		views = append(views, toAchievementView(achievement))
	}
	writeJSON(w, http.StatusOK, AchievementsResponse{Items: views})
}

func (h *Handler) dailyMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req DailyMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	// Potential points only: nothing here touches the ledger.
	breakdown := scoring.Snapshot(req.clamped())
	writeJSON(w, http.StatusOK, DailyMetricsResponse{
		StepsPoints:    breakdown.Steps,
		EnergyPoints:   breakdown.Energy,
		ExercisePoints: breakdown.Exercise,
		TotalPoints:    breakdown.Total(),
	})
}

func (h *Handler) weeklyMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req WeeklyMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	days := make([]scoring.WeekDay, 0, len(req.Days))
	for _, day := range req.Days {
		days = append(days, day.clamped())
	}

	scored, total := scoring.Week(days)
	resp := WeeklyMetricsResponse{TotalPoints: total}
	for _, day := range scored {
		resp.Days = append(resp.Days, WeekDayView{
			Date:         day.Day.Date,
			Steps:        day.Day.Steps,
			StepsPoints:  day.Steps,
			EnergyKcal:   day.Day.ActiveEnergyKcal,
			EnergyPoints: day.Energy,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// publish sends an event on a best-effort basis. Failures are logged and
// never surface to the client: the ledger mutation already happened.
func (h *Handler) publish(ctx context.Context, eventType, key string, payload interface{}) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, eventType, key, payload); err != nil {
		h.logger.Printf("publish %s failed: %v", eventType, err)
	}
}

// RecordActivityRequest is the payload for POST /v1/activities.
type RecordActivityRequest struct {
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	DurationMin int     `json:"duration_min"`
}

// Validate resolves the activity kind. Negative numerics are not rejected;
// the ledger clamps them to zero.
func (r RecordActivityRequest) Validate() (catalog.Kind, error) {
	if strings.TrimSpace(r.Kind) == "" {
		return "", errors.New("kind is required")
	}
	return catalog.Parse(r.Kind)
}

// RecordTransactionRequest is the payload for POST /v1/transactions.
type RecordTransactionRequest struct {
	Title  string `json:"title"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
}

// Validate ensures request correctness.
func (r RecordTransactionRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}

// DailyMetricsRequest carries a platform-measured daily snapshot.
type DailyMetricsRequest struct {
	Steps            int     `json:"steps"`
	ActiveEnergyKcal float64 `json:"active_energy_kcal"`
	ExerciseMinutes  int     `json:"exercise_minutes"`
}

func (r DailyMetricsRequest) clamped() scoring.DailySnapshot {
	snap := scoring.DailySnapshot{
		Steps:            r.Steps,
		ActiveEnergyKcal: r.ActiveEnergyKcal,
		ExerciseMinutes:  r.ExerciseMinutes,
	}
	if snap.Steps < 0 {
		snap.Steps = 0
	}
	if snap.ActiveEnergyKcal < 0 {
		snap.ActiveEnergyKcal = 0
	}
	if snap.ExerciseMinutes < 0 {
		snap.ExerciseMinutes = 0
	}
	return snap
}

// WeeklyMetricsRequest carries the trailing-7-day series, oldest first.
type WeeklyMetricsRequest struct {
	Days []WeekDayRequest `json:"days"`
}

// Validate ensures the series covers exactly seven days.
func (r WeeklyMetricsRequest) Validate() error {
	if len(r.Days) != 7 {
		return errors.New("days must contain exactly 7 entries, oldest first")
	}
	return nil
}

// WeekDayRequest is one day of the weekly series.
type WeekDayRequest struct {
	Date             time.Time `json:"date"`
	Steps            int       `json:"steps"`
	ActiveEnergyKcal float64   `json:"active_energy_kcal"`
}

func (r WeekDayRequest) clamped() scoring.WeekDay {
	day := scoring.WeekDay{
		Date:             r.Date,
		Steps:            r.Steps,
		ActiveEnergyKcal: r.ActiveEnergyKcal,
	}
	if day.Steps < 0 {
		day.Steps = 0
	}
	if day.ActiveEnergyKcal < 0 {
		day.ActiveEnergyKcal = 0
	}
	return day
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
