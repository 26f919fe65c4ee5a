package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type sentMail struct {
	To, Subject, Body string
}

type recordingMailer struct {
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	mailer *recordingMailer
	cfg    *configs.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderDetail{},
	))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	m := &recordingMailer{}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, m)
	return &testEnv{router: r, db: db, mailer: m, cfg: cfg}
}

func (e *testEnv) createUser(t *testing.T, email, firstName, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Email: email, Password: string(hash), FirstName: firstName, Role: role}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	token, err := utils.GenerateToken(u.ID, u.Role, e.cfg.JWTSecret, e.cfg.JWTTTL)
	require.NoError(t, err)
	return token
}

func (e *testEnv) seedProduct(t *testing.T, name string, price int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:    name,
		Price:   price,
		Options: datatypes.NewJSONType(entity.DefaultProductOptions()),
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func orderBody(productIDs []uint, chosen map[string]any) gin.H {
	details := make([]gin.H, 0, len(productIDs))
	for _, id := range productIDs {
		d := gin.H{"product": gin.H{"id": id}}
		if chosen != nil {
			d["chosen_option"] = chosen
		}
		details = append(details, d)
	}
	return gin.H{"order_details": details}
}

func statusBody(status string) gin.H {
	return gin.H{"status": status}
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	return n
}
