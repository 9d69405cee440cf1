package cei

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePage = `<!DOCTYPE html><html><body>
<div class="cci-liturgia-giorno-dettagli-content">
  <h2 class="cci-liturgia-giorno-section-title">Antifona</h2>
  <div class="cci-liturgia-giorno-section-content"><p>Esultate in Dio nostra forza.</p></div>
</div>
<div class="cci-liturgia-giorno-dettagli-content">
  <h2 class="cci-liturgia-giorno-section-title">Antifona alla comunione</h2>
  <div class="cci-liturgia-giorno-section-content"><p>Gustate e vedete.</p></div>
</div>
<div class="cci-liturgia-giorno-dettagli-content">
  <h2 class="cci-liturgia-giorno-section-title">Prima Lettura</h2>
  <div class="cci-liturgia-giorno-section-content">
    <p>Dagli Atti degli Apostoli<br>In quei giorni, Pietro si alzò.</p>
  </div>
</div>
<div class="cci-liturgia-giorno-dettagli-content">
  <h2 class="cci-liturgia-giorno-section-title">Salmo Responsoriale</h2>
  <div class="cci-liturgia-giorno-section-content"><p>Il Signore è il mio pastore.</p></div>
</div>
<div class="cci-liturgia-giorno-dettagli-content">
  <h2 class="cci-liturgia-giorno-section-title">Vangelo</h2>
  <div class="cci-liturgia-giorno-section-content">
    <p>Dal Vangelo secondo Giovanni</p>
    <p>In quel tempo, Gesù disse.</p>
  </div>
</div>
<div class="cci-liturgia-giorno-dettagli-content">
  <h2 class="cci-liturgia-giorno-section-title">Santo del giorno</h2>
  <div class="cci-liturgia-giorno-section-content"><p>Non è una lettura.</p></div>
</div>
</body></html>`

func TestFetch_ParsesSections(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(fixturePage))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	r, err := c.Fetch(context.Background(), time.Date(2025, time.April, 27, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "/liturgia-del-giorno/?data-liturgia=20250427", gotPath)
	assert.Equal(t, "Esultate in Dio nostra forza.", r.EntranceAntiphon)
	assert.Equal(t, "Gustate e vedete.", r.CommunionAntiphon)
	assert.Equal(t, "Il Signore è il mio pastore.", r.Psalm)
	assert.Equal(t, "<strong>Dagli Atti degli Apostoli</strong><br>In quei giorni, Pietro si alzò.", r.FirstReading)
	assert.Equal(t, "<strong>Dal Vangelo secondo Giovanni</strong><br>In quel tempo, Gesù disse.", r.Gospel)
	assert.Equal(t, "", r.SecondReading, "missing section stays empty")
	assert.Equal(t, "", r.GospelVerse)
}

func TestFetch_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	_, err := c.Fetch(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFormatPassage(t *testing.T) {
	assert.Equal(t, "", formatPassage(nil, true))
	assert.Equal(t, "solo", formatPassage([]string{"solo"}, true), "single line is never bolded")
	assert.Equal(t, "a<br>b", formatPassage([]string{"a", "b"}, false))
	assert.Equal(t, "<strong>a</strong><br>b<br>c", formatPassage([]string{"a", "b", "c"}, true))
}
