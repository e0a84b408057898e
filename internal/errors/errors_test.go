package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetcalc/domain/core"
)

func TestWrap_KeepsInnerCode(t *testing.T) {
	inner := InvalidInput("bad json")
	err := Wrapf(fmt.Errorf("decode: %w", inner), "load %s", "scenario.json")

	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "load scenario.json: decode: bad json", err.Error())
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrap_ScenarioErrors(t *testing.T) {
	err := Wrap(fmt.Errorf("fleet 0: %w", core.ErrEmptyFleet), "invalid scenario")

	assert.Equal(t, CodeValidationError, GetCode(err))
	assert.True(t, core.IsScenarioError(err))
}

func TestWrap_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, CodeInternalError, GetCode(Wrap(stderrors.New("boom"), "analyze")))
	assert.Nil(t, Wrap(nil, "noop"))
	assert.Nil(t, WithCode(CodeNotFound, nil))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeNotFound, stderrors.New("missing"))
	assert.Equal(t, CodeNotFound, GetCode(err))
	assert.True(t, IsAppError(err))
	assert.False(t, IsAppError(stderrors.New("plain")))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestRenderError(t *testing.T) {
	err := RenderError("html", stderrors.New("broken"))
	assert.Equal(t, CodeRenderError, err.Code)
	assert.Equal(t, "failed to render html report: broken", err.Error())
}

func TestIs_MatchesByCode(t *testing.T) {
	err := Wrapf(NotFound("scenario a.json"), "load")

	assert.True(t, stderrors.Is(err, NotFound("")))
	assert.False(t, stderrors.Is(err, InvalidInput("")))
}
