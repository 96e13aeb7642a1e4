package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_SetAndPop(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, Flash{Level: "destructive", Title: "Material Eliminado", Body: "Bolts"})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	f := popFlash(rec2, req)
	require.NotNil(t, f)
	assert.Equal(t, "destructive", f.Level)
	assert.Equal(t, "Material Eliminado", f.Title)
	assert.Equal(t, "Bolts", f.Body)

	// popping clears the cookie
	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestFlash_NoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, popFlash(httptest.NewRecorder(), req))
}

func TestFlash_GarbageCookieIgnored(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sw_flash", Value: "%%%not-base64%%%"})
	assert.Nil(t, popFlash(httptest.NewRecorder(), req))
}
