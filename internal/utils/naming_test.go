package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Email", UpperFirst("email"))
	assert.Equal(t, "Email", UpperFirst("Email"))
	assert.Equal(t, "", UpperFirst(""))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "userSetting", LowerFirst("UserSetting"))
	assert.Equal(t, "email", LowerFirst("email"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestIsExported(t *testing.T) {
	assert.True(t, IsExported("Email"))
	assert.False(t, IsExported("email"))
	assert.False(t, IsExported("_email"))
}

func TestReceiverName(t *testing.T) {
	assert.Equal(t, "u", ReceiverName("UserSetting"))
	assert.Equal(t, "p", ReceiverName("pair"))
	assert.Equal(t, "x", ReceiverName(""))
}

func TestSafeParamName(t *testing.T) {
	assert.Equal(t, "email", SafeParamName("Email"))
	assert.Equal(t, "typeVal", SafeParamName("Type"))
	assert.Equal(t, "mapVal", SafeParamName("Map"))
}
