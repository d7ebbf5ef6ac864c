package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renum/internal/errors"
)

func TestFileError(t *testing.T) {
	underlying := stderrors.New("permission denied")
	err := errors.NewFileError("failed to read directory", "/data/in", errors.DirectoryReadFailed, underlying)

	assert.Equal(t, "failed to read directory: /data/in: permission denied", err.Error())
	assert.Equal(t, "/data/in", err.Path())
	assert.Equal(t, errors.DirectoryReadFailed, err.Kind())
	assert.True(t, errors.Is(err, underlying))
}

func TestFileErrorWithoutPath(t *testing.T) {
	err := errors.NewFileError("extension is not valid UTF-8", "", errors.EncodingInvalid, nil)
	assert.Equal(t, "extension is not valid UTF-8", err.Error())
}

func TestTemplateError(t *testing.T) {
	err := errors.NewTemplateError("invalid name template", "img_{number", errors.TemplateParseFailed, nil)

	assert.Equal(t, `invalid name template: "img_{number"`, err.Error())
	assert.Equal(t, "img_{number", err.Template())
	assert.True(t, errors.IsTemplateError(err))
}

func TestConfigError(t *testing.T) {
	err := errors.NewConfigError("recursion level must be >= 0", "scan.level", errors.InvalidConfig, nil)

	assert.Equal(t, "recursion level must be >= 0: scan.level", err.Error())
	assert.Equal(t, "scan.level", err.Param())
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestKindPredicates(t *testing.T) {
	readErr := errors.NewFileError("read", "x", errors.DirectoryReadFailed, nil)
	encErr := errors.NewFileError("enc", "x", errors.EncodingInvalid, nil)
	collErr := errors.NewFileError("coll", "x", errors.DestinationExists, nil)

	assert.True(t, errors.IsDirectoryReadFailed(readErr))
	assert.False(t, errors.IsDirectoryReadFailed(encErr))
	assert.True(t, errors.IsEncodingInvalid(encErr))
	assert.True(t, errors.IsDestinationExists(collErr))
	assert.False(t, errors.IsTemplateError(readErr))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := errors.NewFileError("read", "x", errors.DirectoryReadFailed, nil)
	wrapped := errors.Wrap(inner, "while analyzing")

	require.Error(t, wrapped)
	assert.True(t, errors.IsDirectoryReadFailed(wrapped))

	var fileErr *errors.FileError
	require.True(t, errors.As(wrapped, &fileErr))
	assert.Equal(t, "x", fileErr.Path())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "context"))
	assert.NoError(t, errors.Wrapf(nil, "context %d", 1))
}

func TestNewf(t *testing.T) {
	err := errors.Newf("bad value %d", 7)
	assert.Equal(t, "bad value 7", err.Error())
}
