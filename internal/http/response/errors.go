package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/domain/topics"
)

// RespondDomainError maps the topic error taxonomy onto HTTP statuses:
// not-found -> 404, validation/parameter problems -> 400 with structured
// detail, storage failures -> 500.
func RespondDomainError(c *gin.Context, err error) {
	var (
		notFound   *topics.TopicNotFoundError
		duplicate  *topics.DuplicateTopicError
		badType    *topics.InvalidTopicTypeError
		badModel   *topics.InvalidModelConfigurationError
		missing    *topics.MissingParameterError
		invalidPar *topics.InvalidParameterError
		badSlot    *topics.SlotNotAllowedError
		blobErr    *topics.BlobStorageError
		updateErr  *topics.TopicUpdateError
	)

	switch {
	case errors.As(err, &notFound):
		RespondError(c, http.StatusNotFound, "topic_not_found", err)
	case errors.As(err, &duplicate):
		RespondError(c, http.StatusConflict, "duplicate_topic", err)
	case errors.As(err, &badType):
		RespondError(c, http.StatusBadRequest, "invalid_topic_type", err)
	case errors.As(err, &badModel):
		RespondError(c, http.StatusBadRequest, "invalid_model_configuration", err)
	case errors.As(err, &missing):
		RespondError(c, http.StatusBadRequest, "missing_parameter", err)
	case errors.As(err, &invalidPar):
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Error: APIError{
				Message: err.Error(),
				Code:    "invalid_parameter",
				Names:   invalidPar.Names,
			},
		})
	case errors.As(err, &badSlot):
		RespondError(c, http.StatusBadRequest, "slot_not_allowed", err)
	case errors.As(err, &blobErr):
		RespondError(c, http.StatusInternalServerError, "blob_storage_error", err)
	case errors.As(err, &updateErr):
		RespondError(c, http.StatusInternalServerError, "topic_update_error", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
