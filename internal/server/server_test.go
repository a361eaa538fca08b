package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	srv *Server
}

func newTestEnv(t *testing.T, redisClient *redis.Client) *testEnv {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	srv, err := NewServerWithDeps(testConfig(), db, redisClient)
	require.NoError(t, err)
	return &testEnv{app: srv.NewApp(), db: db, srv: srv}
}

func (e *testEnv) do(t *testing.T, method, target string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = formRequest(method, target, form)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// signup registers a user and returns its id and session cookie.
func (e *testEnv) signup(t *testing.T, username string) (uint, *http.Cookie) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/signedup", url.Values{
		"username":        {username},
		"password":        {"longenough1"},
		"confirmpassword": {"longenough1"},
	}, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/dashboard/"), location)
	id, err := strconv.ParseUint(strings.TrimPrefix(location, "/dashboard/"), 10, 64)
	require.NoError(t, err)

	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "statement1" {
			session = ck
		}
	}
	require.NotNil(t, session, "signup should set the session cookie")
	return uint(id), &http.Cookie{Name: session.Name, Value: session.Value}
}

type listBody struct {
	Kind    string          `json:"kind"`
	Records []models.Record `json:"records"`
}

func (e *testEnv) list(t *testing.T, kind models.Kind, cookie *http.Cookie) listBody {
	t.Helper()
	resp := e.do(t, http.MethodGet, kind.ListPath(), nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body listBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestSignupThenEmptyJournal(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/signedup", url.Values{
		"username":        {"alice"},
		"password":        {"longenough1"},
		"confirmpassword": {"longenough1"},
	}, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, fmt.Sprintf("/dashboard/%d", user.ID), resp.Header.Get("Location"))

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, "statement1", ck.Name)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, 86400, ck.MaxAge)

	body := env.list(t, models.KindJournal, &http.Cookie{Name: ck.Name, Value: ck.Value})
	assert.Equal(t, "journal", body.Kind)
	assert.NotNil(t, body.Records)
	assert.Empty(t, body.Records)
}

func TestCreateJournalIsListedForOwner(t *testing.T) {
	env := newTestEnv(t, nil)
	aliceID, alice := env.signup(t, "alice")
	_, bob := env.signup(t, "bob")

	resp := env.do(t, http.MethodPost, "/createjournal", url.Values{
		"journaltitle":   {"T"},
		"journalcontent": {"C"},
	}, alice)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/journal", resp.Header.Get("Location"))

	body := env.list(t, models.KindJournal, alice)
	require.Len(t, body.Records, 1)
	assert.Equal(t, "T", body.Records[0].Title)
	assert.Equal(t, "C", body.Records[0].Content)
	assert.Equal(t, aliceID, body.Records[0].OwnerID)

	assert.Empty(t, env.list(t, models.KindJournal, bob).Records)
}

func TestDeleteTwice(t *testing.T) {
	env := newTestEnv(t, nil)
	_, alice := env.signup(t, "alice")

	env.do(t, http.MethodPost, "/createjournal", url.Values{"title": {"T"}, "content": {"C"}}, alice)
	records := env.list(t, models.KindJournal, alice).Records
	require.Len(t, records, 1)
	target := fmt.Sprintf("/deletejournal/%d", records[0].ID)

	for i := 0; i < 2; i++ {
		resp := env.do(t, http.MethodPost, target, nil, alice)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/journal", resp.Header.Get("Location"))
	}
	assert.Empty(t, env.list(t, models.KindJournal, alice).Records)
}

func TestAccessGuard(t *testing.T) {
	env := newTestEnv(t, nil)
	_, alice := env.signup(t, "alice")

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/dashboard/1"},
		{http.MethodGet, "/journal"},
		{http.MethodGet, "/book"},
		{http.MethodGet, "/story"},
		{http.MethodGet, "/createjournal"},
		{http.MethodPost, "/createstory"},
		{http.MethodGet, "/editbook/1"},
		{http.MethodPost, "/editjournal/1"},
		{http.MethodPost, "/deletestory/1"},
		{http.MethodPost, "/togglecheck/1"},
	}

	cookies := map[string]*http.Cookie{
		"No Cookie":      nil,
		"Garbage Cookie": {Name: "statement1", Value: "not-a-token"},
		"Tampered":       {Name: "statement1", Value: alice.Value + "x"},
	}

	for name, ck := range cookies {
		for _, p := range protected {
			t.Run(name+" "+p.method+" "+p.path, func(t *testing.T) {
				resp := env.do(t, p.method, p.path, nil, ck)
				assert.Equal(t, http.StatusFound, resp.StatusCode)
				assert.Equal(t, "/", resp.Header.Get("Location"))
			})
		}
	}

	var count int64
	require.NoError(t, env.db.Table("stories").Count(&count).Error)
	assert.Zero(t, count, "guarded handler must not run")

	resp := env.do(t, http.MethodGet, "/journal", nil, alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExpiredSessionIsAnonymous(t *testing.T) {
	env := newTestEnv(t, nil)
	id, _ := env.signup(t, "alice")

	past := time.Now().Add(-48 * time.Hour)
	env.srv.tokens.WithClock(func() time.Time { return past })
	token, _, err := env.srv.tokens.Issue(id, "alice")
	require.NoError(t, err)
	env.srv.tokens.WithClock(time.Now)

	resp := env.do(t, http.MethodGet, "/journal", nil, &http.Cookie{Name: "statement1", Value: token})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestHome(t *testing.T) {
	env := newTestEnv(t, nil)
	id, alice := env.signup(t, "alice")

	var anon struct {
		User *userView `json:"user"`
	}
	resp := env.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&anon))
	assert.Nil(t, anon.User)

	var authed struct {
		User *userView `json:"user"`
	}
	resp = env.do(t, http.MethodGet, "/", nil, alice)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&authed))
	require.NotNil(t, authed.User)
	assert.Equal(t, id, authed.User.ID)
	assert.Equal(t, "alice", authed.User.Username)
}

func TestLoginAndLogout(t *testing.T) {
	env := newTestEnv(t, nil)
	id, _ := env.signup(t, "alice")

	resp := env.do(t, http.MethodPost, "/loggedin", url.Values{"username": {"alice"}, "password": {"longenough1"}}, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/dashboard/%d", id), resp.Header.Get("Location"))

	resp = env.do(t, http.MethodPost, "/loggedin", url.Values{"username": {"alice"}, "password": {"wrong-password"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/logout", nil, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "statement1", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestSignupAndLoginWithLongPassword(t *testing.T) {
	env := newTestEnv(t, nil)
	long := strings.Repeat("p", 100)

	resp := env.do(t, http.MethodPost, "/signedup", url.Values{
		"username":        {"alice"},
		"password":        {long},
		"confirmpassword": {long},
	}, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(location, "/dashboard/"), location)

	resp = env.do(t, http.MethodPost, "/loggedin", url.Values{"username": {"alice"}, "password": {long}}, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, location, resp.Header.Get("Location"))
}

func TestSignupConflictAndValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	env.signup(t, "alice")

	resp := env.do(t, http.MethodPost, "/signedup", url.Values{
		"username":        {"alice"},
		"password":        {"longenough1"},
		"confirmpassword": {"longenough1"},
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, []string{"Username is already taken."}, decodeError(t, resp).Errors)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	req := httptest.NewRequest(http.MethodPost, "/signedup",
		strings.NewReader(`{"username":"bob","password":"longenough1","confirmpassword":"different1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"Password and confirm password should be same."}, decodeError(t, resp).Errors)
}

func TestDashboard(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	env := newTestEnv(t, client)
	aliceID, alice := env.signup(t, "alice")
	bobID, _ := env.signup(t, "bob")

	env.do(t, http.MethodPost, "/createbook", url.Values{"booktitle": {"Dune"}}, alice)
	env.do(t, http.MethodPost, "/createstory", url.Values{"storytitle": {"Tale"}, "storycontent": {"Once"}}, alice)

	type dashBody struct {
		User     userView        `json:"user"`
		Journals []models.Record `json:"journals"`
		Books    []models.Record `json:"books"`
		Stories  []models.Record `json:"stories"`
	}
	fetch := func() dashBody {
		resp := env.do(t, http.MethodGet, fmt.Sprintf("/dashboard/%d", aliceID), nil, alice)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body dashBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	body := fetch()
	assert.Equal(t, "alice", body.User.Username)
	assert.Empty(t, body.Journals)
	require.Len(t, body.Books, 1)
	require.Len(t, body.Stories, 1)
	assert.Equal(t, "Dune", body.Books[0].Title)
	assert.True(t, mr.Exists(fmt.Sprintf("dashboard:%d", aliceID)))

	env.do(t, http.MethodPost, "/createjournal", url.Values{"journaltitle": {"Day one"}}, alice)
	body = fetch()
	require.Len(t, body.Journals, 1, "creating a record should invalidate the cached dashboard")

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/dashboard/%d", bobID), nil, alice)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/dashboard/abc", nil, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid ID", decodeError(t, resp).Error)
}

func TestEditAndOwnership(t *testing.T) {
	env := newTestEnv(t, nil)
	_, alice := env.signup(t, "alice")
	_, bob := env.signup(t, "bob")

	env.do(t, http.MethodPost, "/createstory", url.Values{"storytitle": {"Draft"}}, alice)
	rec := env.list(t, models.KindStory, alice).Records[0]
	editPath := fmt.Sprintf("/editstory/%d", rec.ID)

	resp := env.do(t, http.MethodGet, editPath, nil, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		Kind   string        `json:"kind"`
		Record models.Record `json:"record"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, "story", page.Kind)
	assert.Equal(t, "Draft", page.Record.Title)

	resp = env.do(t, http.MethodGet, editPath, nil, bob)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, editPath, url.Values{"storytitle": {"Hijacked"}}, bob)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, fmt.Sprintf("/deletestory/%d", rec.ID), nil, bob)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, editPath, url.Values{"storytitle": {""}}, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"You must provide title."}, decodeError(t, resp).Errors)

	resp = env.do(t, http.MethodPost, editPath, url.Values{"storytitle": {"Final"}, "storycontent": {"The end"}}, alice)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/story", resp.Header.Get("Location"))

	records := env.list(t, models.KindStory, alice).Records
	require.Len(t, records, 1)
	assert.Equal(t, "Final", records[0].Title)
	assert.Equal(t, "The end", records[0].Content)

	resp = env.do(t, http.MethodGet, "/editstory/0", nil, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestToggleCheck(t *testing.T) {
	env := newTestEnv(t, nil)
	_, alice := env.signup(t, "alice")
	_, bob := env.signup(t, "bob")

	env.do(t, http.MethodPost, "/createbook", url.Values{"booktitle": {"Dune"}}, alice)
	book := env.list(t, models.KindBook, alice).Records[0]
	assert.False(t, book.Checked)
	path := fmt.Sprintf("/togglecheck/%d", book.ID)

	resp := env.do(t, http.MethodPost, path, url.Values{"checked": {"on"}}, alice)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/book", resp.Header.Get("Location"))
	assert.True(t, env.list(t, models.KindBook, alice).Records[0].Checked)

	resp = env.do(t, http.MethodPost, path, nil, alice)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.False(t, env.list(t, models.KindBook, alice).Records[0].Checked)

	resp = env.do(t, http.MethodPost, path, url.Values{"checked": {"on"}}, bob)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.list(t, models.KindBook, alice).Records[0].Checked)
}

func TestCreateValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	_, alice := env.signup(t, "alice")

	resp := env.do(t, http.MethodGet, "/createbook", nil, alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/createbook", url.Values{"bookcontent": {"no title"}}, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"You must provide title."}, decodeError(t, resp).Errors)
	assert.Empty(t, env.list(t, models.KindBook, alice).Records)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/health/ready", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
	assert.Equal(t, "disabled", body.Checks["redis"])

	resp = env.do(t, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/no-such-route", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
