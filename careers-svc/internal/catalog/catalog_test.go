package catalog

import (
	"testing"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Categories, 16)
	assert.True(t, c.HasCategory("Technology"))
	assert.False(t, c.HasCategory("technology"))
	assert.True(t, c.HasIndustry("Media & Entertainment"))
	assert.True(t, c.HasCompanySize("500+ employees"))

	var types []string
	for _, jt := range c.JobTypes {
		types = append(types, jt.Value)
	}
	assert.Equal(t, domain.JobTypes, types)

	require.Len(t, c.StatusOptions, 5)
	assert.Equal(t, Option{Value: "rejected", Label: "Not Selected"}, c.StatusOptions[3])
}
