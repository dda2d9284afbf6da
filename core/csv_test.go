package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCSVName(t *testing.T) {
	// first upload of a .csv passes
	assert.NoError(t, CheckCSVName("users.csv", ""))

	// extension check is case-insensitive
	assert.NoError(t, CheckCSVName("USERS.CSV", ""))

	// no file picked
	assert.ErrorIs(t, CheckCSVName("", ""), ErrNoFile)

	// wrong extension, regardless of content
	assert.ErrorIs(t, CheckCSVName("data.txt", ""), ErrNotCSV)

	// same name as the last upload this session is blocked
	assert.ErrorIs(t, CheckCSVName("users.csv", "users.csv"), ErrAlreadyLoaded)

	// a different file afterwards is fine
	assert.NoError(t, CheckCSVName("more_users.csv", "users.csv"))
}
