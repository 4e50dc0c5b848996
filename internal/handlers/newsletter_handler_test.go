package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSubscribeErrorDistinguishesDuplicateEmail(t *testing.T) {
	status, message := subscribeErrorResponse(gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, msgAlreadySubscribed, message)
}

func TestSubscribeErrorWrappedDuplicate(t *testing.T) {
	wrapped := gorm.ErrDuplicatedKey
	status, message := subscribeErrorResponse(errors.Join(wrapped, errors.New("insert failed")))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, msgAlreadySubscribed, message)
}

func TestSubscribeErrorGenericFailure(t *testing.T) {
	status, message := subscribeErrorResponse(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, msgSubscribeFailed, message)
	assert.NotEqual(t, msgAlreadySubscribed, message)
}
