// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/simple-poll/cliparse"
	"github.com/danielhkuo/simple-poll/models"
)

func testPoll() models.Poll {
	return models.Poll{
		Question: "Where should we eat?",
		Options: []models.Option{
			{Name: "Pizza", Location: "https://maps.google.com/@19.43,-99.13,17z", Votes: 1},
			{Name: "Tacos", Votes: 2},
		},
	}
}

func renderPage(t *testing.T, env, page string, data PageData) string {
	t.Helper()

	r, err := New(env)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", env, err)
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, page, data); err != nil {
		t.Fatalf("Render(%s) failed: %v", page, err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
	return w.Body.String()
}

func TestRender_VotePage(t *testing.T) {
	body := renderPage(t, cliparse.EnvDev, PageVote, PageData{Poll: testPoll()})

	expected := []string{
		"Where should we eat?",
		`action="/vote"`,
		`name="vote" value="0"`,
		`name="vote" value="1"`,
		"Pizza",
		"Tacos",
		"(33.3%)",
		"(66.7%)",
		"3 votes",
	}
	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("Expected vote page to contain %q", s)
		}
	}

	if strings.Contains(body, "maps.googleapis.com") {
		t.Error("Map widget should be absent without an API key")
	}
}

func TestRender_MapWidget(t *testing.T) {
	body := renderPage(t, cliparse.EnvDev, PageVote, PageData{Poll: testPoll(), MapsAPIKey: "test-key"})

	if !strings.Contains(body, "maps.googleapis.com/maps/api/js?key=test-key") {
		t.Error("Expected Google Maps script with the API key")
	}
	if !strings.Contains(body, `id="map"`) {
		t.Error("Expected map container")
	}
}

func TestRender_ManagePage(t *testing.T) {
	body := renderPage(t, cliparse.EnvDev, PageManage, PageData{Poll: testPoll()})

	expected := []string{
		`action="/edit_option"`,
		`action="/remove_option"`,
		`action="/add_option"`,
		`name="option_index" value="1"`,
		`name="option_name" value="Tacos"`,
		`name="option_location"`,
		`name="new_option"`,
		`name="new_location"`,
		`maxlength="100"`,
		`href="/resetcount"`,
	}
	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("Expected manage page to contain %q", s)
		}
	}
}

func TestRender_SingleOptionCannotBeRemoved(t *testing.T) {
	poll := models.Poll{Question: "Q", Options: []models.Option{{Name: "Only"}}}
	body := renderPage(t, cliparse.EnvDev, PageManage, PageData{Poll: poll})

	if strings.Contains(body, `action="/remove_option"`) {
		t.Error("Remove button should be hidden for the last option")
	}
}

func TestRender_ThousandsSeparator(t *testing.T) {
	poll := models.Poll{Question: "Q", Options: []models.Option{{Name: "Busy", Votes: 1234}}}
	body := renderPage(t, cliparse.EnvDev, PageVote, PageData{Poll: poll})

	if !strings.Contains(body, "1,234 votes") {
		t.Error("Expected vote total with thousands separator")
	}
}

func TestRender_Escaping(t *testing.T) {
	poll := models.Poll{
		Question: "**Lunch** <b>raw</b>",
		Options: []models.Option{
			{Name: "<script>alert(1)</script>", Location: "javascript:alert(1)"},
			{Name: "Safe"},
		},
	}
	body := renderPage(t, cliparse.EnvDev, PageVote, PageData{Poll: poll})

	if !strings.Contains(body, "<strong>Lunch</strong>") {
		t.Error("Expected markdown in the question to be rendered")
	}
	if strings.Contains(body, "<b>raw</b>") {
		t.Error("Raw HTML in the question should not pass through")
	}
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("Option name should be escaped")
	}
	if strings.Contains(body, `href="javascript:alert(1)"`) {
		t.Error("Unsafe location URL should be filtered")
	}
}

func TestRender_ProdIsMinified(t *testing.T) {
	data := PageData{Poll: testPoll()}
	dev := renderPage(t, cliparse.EnvDev, PageVote, data)
	prod := renderPage(t, cliparse.EnvProd, PageVote, data)

	if len(prod) >= len(dev) {
		t.Errorf("Expected minified page to be smaller: prod=%d dev=%d", len(prod), len(dev))
	}
	for _, s := range []string{"Pizza", "Tacos", "/vote"} {
		if !strings.Contains(prod, s) {
			t.Errorf("Minified page lost %q", s)
		}
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New(cliparse.EnvDev)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, "admin", PageData{}); err == nil {
		t.Error("Expected error for unknown page")
	}
	if w.Body.Len() != 0 {
		t.Error("Nothing should be written for an unknown page")
	}
}

func TestRender_LinksVersionedAssets(t *testing.T) {
	r, err := New(cliparse.EnvDev)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, PageVote, PageData{Poll: testPoll()}); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"/static/css/poll.css", "/static/js/poll.js"} {
		url := r.Assets().URL(p)
		if !strings.Contains(w.Body.String(), url) {
			t.Errorf("Expected page to link %s", url)
		}
	}
}
