package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
	"github.com/pablozramirez73/questionari-webapp/internal/services"
)

// Handlers binds the questionnaire operations to HTTP. It owns no state of
// its own; everything flows through the injected services.
type Handlers struct {
	Questionnaires *services.QuestionnaireService
	Editor         *services.EditorService
	Answers        *services.AnswerService
	Logger         *zap.Logger
	NoticeTTL      time.Duration
}

func NewHandlers(q *services.QuestionnaireService, e *services.EditorService, a *services.AnswerService, log *zap.Logger, noticeTTL time.Duration) *Handlers {
	return &Handlers{Questionnaires: q, Editor: e, Answers: a, Logger: log, NoticeTTL: noticeTTL}
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	ok(c, gin.H{"status": "healthy"})
}

// ListQuestionnaires returns the stored records for the card list, most
// recently updated first.
func (h *Handlers) ListQuestionnaires(c *gin.Context) {
	list, err := h.Questionnaires.List()
	if err != nil {
		h.Logger.Error("list_questionnaires: failed to load", zap.Error(err))
		failFromService(c, err)
		return
	}
	ok(c, list)
}

// GetQuestionnaire returns one record plus its render views for the fill
// page.
func (h *Handlers) GetQuestionnaire(c *gin.Context) {
	id := c.Param("id")
	q, err := h.Questionnaires.Get(id)
	if err != nil {
		failFromService(c, err)
		return
	}
	views, err := h.Answers.BuildViews(q)
	if err != nil {
		h.Logger.Error("get_questionnaire: failed to build views",
			zap.String("questionnaire_id", id),
			zap.Error(err),
		)
		failFromService(c, err)
		return
	}
	ok(c, gin.H{"questionnaire": q, "views": views})
}

// SaveQuestionnaire accepts an editor draft (create when questionnaire_id is
// empty, edit otherwise) and persists the collected questionnaire.
func (h *Handlers) SaveQuestionnaire(c *gin.Context) {
	var draft services.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	questions, err := h.Editor.Collect(&draft)
	if err != nil {
		failFromService(c, err)
		return
	}
	saved, err := h.Questionnaires.Save(models.Questionnaire{
		ID:          draft.QuestionnaireID,
		Title:       draft.Title,
		Description: draft.Description,
		Questions:   questions,
	})
	if err != nil {
		failFromService(c, err)
		return
	}

	h.Logger.Info("save_questionnaire: saved",
		zap.String("questionnaire_id", saved.ID),
		zap.Int("questions", len(saved.Questions)),
		zap.Bool("edit", draft.Editing()),
	)
	if draft.Editing() {
		ok(c, saved)
		return
	}
	created(c, saved)
}

// DeleteQuestionnaire removes a record. The confirm query parameter carries
// the user's confirmation; without it nothing changes.
func (h *Handlers) DeleteQuestionnaire(c *gin.Context) {
	id := c.Param("id")
	confirmed := c.Query("confirm") == "true"
	if err := h.Questionnaires.Delete(id, confirmed); err != nil {
		failFromService(c, err)
		return
	}
	h.Logger.Info("delete_questionnaire: deleted", zap.String("questionnaire_id", id))
	ok(c, gin.H{"deleted": id})
}

type submitAnswersRequest struct {
	Answers []models.Answer `json:"answers"`
}

// SubmitAnswers validates a fill submission. Answers are discarded on
// success; the response carries the delay after which the page returns to
// the list.
func (h *Handlers) SubmitAnswers(c *gin.Context) {
	id := c.Param("id")
	var req submitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	q, err := h.Questionnaires.Get(id)
	if err != nil {
		failFromService(c, err)
		return
	}
	receipt, err := h.Answers.Submit(q, req.Answers)
	if err != nil {
		failFromService(c, err)
		return
	}
	h.Logger.Info("submit_answers: accepted",
		zap.String("questionnaire_id", id),
		zap.Int("answered", receipt.Answered),
	)
	ok(c, gin.H{"receipt": receipt, "redirect_after_ms": h.NoticeTTL.Milliseconds()})
}
