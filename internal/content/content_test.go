package content

import (
	"testing"

	"petro-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeContent(t *testing.T) {
	en := HomeContent(model.LanguageEN)
	fa := HomeContent(model.LanguageFA)

	require.Len(t, en.Stats, 4)
	assert.Equal(t, "100+", en.Stats[0].Value)
	assert.Equal(t, "Completed Projects", en.Stats[0].Label)
	assert.Equal(t, "پروژه موفق", fa.Stats[0].Label)

	require.Len(t, en.Features, 4)
	assert.Equal(t, "Guaranteed Quality", en.Features[0].Title)
	assert.Equal(t, "کیفیت تضمین‌شده", fa.Features[0].Title)

	// Certifications are language-independent.
	assert.Equal(t, en.Certifications, fa.Certifications)
	assert.Contains(t, en.Certifications, "ISO 9001")
}

func TestNavLinks(t *testing.T) {
	en := NavLinks(model.LanguageEN)
	fa := NavLinks(model.LanguageFA)

	require.Len(t, en.Nav, 6)
	assert.Equal(t, "Home", en.Nav[0].Label)
	assert.Equal(t, "خانه", fa.Nav[0].Label)

	// Services and Resources carry submenus; other entries do not.
	assert.Len(t, en.Nav[2].Links, 4)
	assert.Len(t, en.Nav[4].Links, 4)
	assert.Empty(t, en.Nav[1].Links)

	require.Len(t, en.Footer, 4)
	assert.Equal(t, "/products", en.Footer[1].Path)
}
