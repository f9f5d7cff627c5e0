package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/CYSTCloud/TP/global"
	"github.com/CYSTCloud/TP/log"
	"github.com/CYSTCloud/TP/models"
	"github.com/CYSTCloud/TP/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TranslationStore 翻译记录的持久层
type TranslationStore interface {
	Create(ctx context.Context, t *models.Translation) error
	List(ctx context.Context) ([]models.Translation, error)
}

type TranslationController struct {
	store           TranslationStore
	provider        provider.Client
	providerTimeout time.Duration
	writeTimeout    time.Duration
}

func NewTranslationController(store TranslationStore, client provider.Client, providerTimeout, writeTimeout time.Duration) *TranslationController {
	if providerTimeout <= 0 {
		providerTimeout = global.ProviderTimeout
	}
	if writeTimeout <= 0 {
		writeTimeout = global.StoreWriteTimeout
	}
	return &TranslationController{
		store:           store,
		provider:        client,
		providerTimeout: providerTimeout,
		writeTimeout:    writeTimeout,
	}
}

// List godoc
// @Summary     Retrieve all translations
// @Description Returns every stored translation in insertion order
// @Tags        Translation
// @Produce     json
// @Success     200  {array}   models.Translation
// @Failure     500  {object}  map[string]string
// @Router      /api/translation/ [get]
func (tc *TranslationController) List(c *gin.Context) {
	translations, err := tc.store.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		log.L().Error("list translations error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list translations"})
		return
	}
	c.JSON(http.StatusOK, translations)
}

// Create godoc
// @Summary     Create a new translation
// @Description Translates source_text with the configured provider and stores the result
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request  body      models.TranslationInput  true  "text to translate"
// @Success     201      {object}  models.Translation
// @Failure     400      {object}  map[string]string  "Invalid request. Missing required fields."
// @Failure     500      {object}  map[string]string
// @Router      /api/translation/ [post]
func (tc *TranslationController) Create(c *gin.Context) {
	var in models.TranslationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		verr := models.NewValidationError(err)
		_ = c.Error(verr)
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), tc.providerTimeout)
	defer cancel()
	translated, err := tc.provider.Translate(ctx, provider.Request{
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		Text:           in.SourceText,
	})
	if err != nil {
		_ = c.Error(err)
		status, msg := providerErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	record := models.Translation{
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		SourceText:     in.SourceText,
		TargetText:     translated,
	}
	// 写库绑定短超时；外部调用已成功，这里失败则译文丢失
	dbCtx, dbCancel := context.WithTimeout(c.Request.Context(), tc.writeTimeout)
	defer dbCancel()
	if err := tc.store.Create(dbCtx, &record); err != nil {
		_ = c.Error(err)
		log.L().Error("translation succeeded but was not stored",
			zap.String("provider", tc.provider.Name()),
			zap.String("source_language", record.SourceLanguage),
			zap.String("target_language", record.TargetLanguage),
			zap.Int("source_length", len(record.SourceText)),
			zap.Int("target_length", len(record.TargetText)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save translation"})
		return
	}

	log.L().Info("translation stored",
		zap.Uint("id", record.ID),
		zap.String("provider", tc.provider.Name()),
		zap.String("source_language", record.SourceLanguage),
		zap.String("target_language", record.TargetLanguage))
	c.JSON(http.StatusCreated, record)
}

// 外部服务的状态码原样透传, 2xx/3xx 不能当作失败码返回给调用方
func providerErrorResponse(err error) (int, string) {
	var appErr *provider.ApplicationError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		log.L().Warn("translation provider error", zap.Int("status", appErr.StatusCode), zap.String("error", appErr.Message))
		return status, appErr.Message
	}

	var transportErr *provider.TransportError
	if errors.As(err, &transportErr) {
		log.L().Error("translation provider unavailable", zap.Error(err))
		return http.StatusInternalServerError, transportErr.Error()
	}

	log.L().Error("translation provider failed", zap.Error(err))
	return http.StatusInternalServerError, err.Error()
}
