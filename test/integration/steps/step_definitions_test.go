// Package steps wires the full application against in-process fakes and runs
// the Godog feature suite over real HTTP.
package steps

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/usecase/auth"
	"github.com/rentfolio/backend/internal/application/usecase/lease"
	"github.com/rentfolio/backend/internal/application/usecase/payment"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/valueobject"
	"github.com/rentfolio/backend/internal/infra/server/router"
	"github.com/rentfolio/backend/internal/integration/adapters"
	"github.com/rentfolio/backend/internal/integration/entrypoint/controller"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
	"github.com/rentfolio/backend/internal/integration/persistence"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
	"github.com/rentfolio/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testWebhookSecret = "test-webhook-secret"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri              string
	headers          map[string]string
	client           *http.Client
	response         *response
	db               *mock.Db
	accessToken      string
	refreshToken     string
	currentUserID    uuid.UUID
	currentLeaseID   uuid.UUID
	currentPaymentID uuid.UUID
}

type response struct {
	status int
	raw    []byte
	body   any
}

var serverInit sync.Once
var portInit sync.Once
var testDB *mock.Db
var testGateway *mock.Gateway
var testClock *mock.Clock
var testServerPort int

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"leases":         &model.LeaseModel{},
			"payments":       &model.PaymentModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db
	if testGateway == nil {
		testGateway = mock.NewGateway(testWebhookSecret)
	}
	if testClock == nil {
		testClock = mock.NewClock()
	}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^an admin exists with email "([^"]*)" and password "([^"]*)"$`, test.anAdminExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)

	// Lease setup steps
	ctx.Given(`^a lease exists for tenant "([^"]*)" in unit "([^"]*)" with monthly rent "([^"]*)"$`, test.aLeaseExists)
	ctx.Given(`^a lease exists for tenant "([^"]*)" in unit "([^"]*)" with monthly rent "([^"]*)" and deposit "([^"]*)"$`, test.aLeaseExistsWithDeposit)
	ctx.Given(`^a lease exists for tenant "([^"]*)" in unit "([^"]*)" with monthly rent "([^"]*)" running from "([^"]*)" to "([^"]*)"$`, test.aLeaseExistsWithDates)

	// Payment setup steps
	ctx.Given(`^a settled "([^"]*)" payment of "([^"]*)" with fee "([^"]*)" exists for the lease$`, test.aSettledPaymentExists)
	ctx.Given(`^a settled "([^"]*)" payment of "([^"]*)" exists paid (\d+) months ago$`, test.aSettledPaymentExistsPaidMonthsAgo)
	ctx.Given(`^a settled refund of "([^"]*)" in category "([^"]*)" exists for the lease$`, test.aSettledRefundExists)
	ctx.Given(`^a pending gateway payment of "([^"]*)" exists with session "([^"]*)"$`, test.aPendingGatewayPaymentExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^the gateway sends a "([^"]*)" event for session "([^"]*)" with amount "([^"]*)" and fee "([^"]*)"$`, test.theGatewaySendsAnEvent)
	ctx.When(`^the gateway sends a "([^"]*)" event for session "([^"]*)" with an invalid signature$`, test.theGatewaySendsAnUnsignedEvent)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentLeaseID = uuid.Nil
	t.currentPaymentID = uuid.Nil
	t.response = nil

	if t.db != nil {
		if err := t.db.Truncate(); err != nil {
			panic(err)
		}
	}
	_ = mock.ClearRedis(mock.NewRedis())
	testGateway.Reset()
	testClock.Thaw()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			leaseRepo := persistence.NewLeaseRepository(testDB.DbConn)
			paymentRepo := persistence.NewPaymentRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			gateway := adapters.NewGatewayClient(testGateway.URL(), "test-api-key", testWebhookSecret)
			summaryCache := adapters.NewRedisSummaryCache(mock.NewRedis(), time.Minute)

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			createLeaseUseCase := lease.NewCreateLeaseUseCase(leaseRepo, summaryCache)
			listLeasesUseCase := lease.NewListLeasesUseCase(leaseRepo)
			getLeaseUseCase := lease.NewGetLeaseUseCase(leaseRepo)
			updateLeaseUseCase := lease.NewUpdateLeaseUseCase(leaseRepo, summaryCache)
			deleteLeaseUseCase := lease.NewDeleteLeaseUseCase(leaseRepo, summaryCache)

			recordPaymentUseCase := payment.NewRecordPaymentUseCase(paymentRepo, summaryCache)
			listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
			createCheckoutUseCase := payment.NewCreateCheckoutUseCase(leaseRepo, paymentRepo, gateway)
			issueRefundUseCase := payment.NewIssueRefundUseCase(paymentRepo, gateway, testClock, summaryCache)
			handleWebhookUseCase := payment.NewHandleWebhookUseCase(paymentRepo, gateway, summaryCache)

			getSummaryUseCase := revenue.NewGetSummaryUseCase(reportRepo, summaryCache, testClock)
			queueStatementUseCase := revenue.NewQueueStatementUseCase(getSummaryUseCase, emailQueueRepo, testClock)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)
			leaseController := controller.NewLeaseController(
				createLeaseUseCase,
				listLeasesUseCase,
				getLeaseUseCase,
				updateLeaseUseCase,
				deleteLeaseUseCase,
			)
			paymentController := controller.NewPaymentController(
				recordPaymentUseCase,
				listPaymentsUseCase,
				createCheckoutUseCase,
				issueRefundUseCase,
			)
			revenueController := controller.NewRevenueController(
				getSummaryUseCase,
				queueStatementUseCase,
			)
			webhookController := controller.NewWebhookController(handleWebhookUseCase)

			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				leaseController,
				paymentController,
				revenueController,
				webhookController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "viewer")
}

func (t *testContext) anAdminExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "admin")
}

func (t *testContext) createUser(email, password, role string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: hashPassword(password),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashed)
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	t.currentUserID = userModel.ID

	now := time.Now().UTC()
	accessToken, err := signToken(&userModel, "access", now, 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := signToken(&userModel, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       refreshToken,
		UserID:      userModel.ID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signToken(user *model.UserModel, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID.String(),
		"email":      user.Email,
		"role":       user.Role,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "rentfolio",
		"sub":        user.ID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	t.refreshToken = ""
	return nil
}

func (t *testContext) aLeaseExists(tenant, unit, rent string) error {
	return t.createLease(tenant, unit, rent, "0", "", "")
}

func (t *testContext) aLeaseExistsWithDeposit(tenant, unit, rent, deposit string) error {
	return t.createLease(tenant, unit, rent, deposit, "", "")
}

func (t *testContext) aLeaseExistsWithDates(tenant, unit, rent, start, end string) error {
	return t.createLease(tenant, unit, rent, "0", start, end)
}

func (t *testContext) createLease(tenant, unit, rent, deposit, start, end string) error {
	leaseID := uuid.New()
	t.currentLeaseID = leaseID

	now := time.Now().UTC()
	leaseModel := &model.LeaseModel{
		ID:            leaseID,
		TenantName:    tenant,
		UnitLabel:     unit,
		MonthlyRent:   decimal.RequireFromString(rent),
		DepositAmount: decimal.RequireFromString(deposit),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if start != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", start, err)
		}
		leaseModel.StartDate = sqlTime(startDate)
	}
	if end != "" {
		endDate, err := time.Parse("2006-01-02", end)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", end, err)
		}
		leaseModel.EndDate = sqlTime(endDate)
	}

	return t.db.DbConn.Create(leaseModel).Error
}

func (t *testContext) aSettledPaymentExists(paymentType, amount, fee string) error {
	paidAt := time.Now().UTC().AddDate(0, -1, 0)
	return t.createPayment(paymentType, amount, fee, "succeeded", paidAt, "", "")
}

func (t *testContext) aSettledPaymentExistsPaidMonthsAgo(paymentType, amount string, monthsAgo int) error {
	paidAt := time.Now().UTC().AddDate(0, -monthsAgo, 0)
	return t.createPayment(paymentType, amount, "0", "succeeded", paidAt, "", "")
}

func (t *testContext) aSettledRefundExists(amount, category string) error {
	paidAt := time.Now().UTC().AddDate(0, -1, 0)
	return t.createPayment("refund", "-"+amount, "0", "succeeded", paidAt, category, "")
}

func (t *testContext) aPendingGatewayPaymentExists(amount, sessionID string) error {
	return t.createPayment("rent", amount, "0", "pending", time.Time{}, "", sessionID)
}

func (t *testContext) createPayment(paymentType, amount, fee, status string, paidAt time.Time, refundCategory, sessionID string) error {
	paymentID := uuid.New()
	t.currentPaymentID = paymentID

	now := time.Now().UTC()
	paymentModel := &model.PaymentModel{
		ID:               paymentID,
		AmountCents:      cents(amount),
		FeeCents:         cents(fee),
		Type:             paymentType,
		Status:           status,
		GatewaySessionID: sessionID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if t.currentLeaseID != uuid.Nil {
		leaseID := t.currentLeaseID
		paymentModel.LeaseID = &leaseID
	}
	if !paidAt.IsZero() {
		paymentModel.PaidAt = sqlTime(paidAt)
	}
	if refundCategory != "" {
		paymentModel.RefundCategory.String = refundCategory
		paymentModel.RefundCategory.Valid = true
	}

	return t.db.DbConn.Create(paymentModel).Error
}

func sqlTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func cents(amount string) int64 {
	return valueobject.MoneyFromDecimal(decimal.RequireFromString(amount)).Cents()
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload, nil)
}

func (t *testContext) theGatewaySendsAnEvent(eventType, sessionID, amount, fee string) error {
	payload := gatewayEventBody(eventType, sessionID, amount, fee)
	headers := map[string]string{"X-Gateway-Signature": testGateway.Sign(payload)}
	return t.executeRequest(http.MethodPost, "/api/v1/webhooks/gateway", payload, headers)
}

func (t *testContext) theGatewaySendsAnUnsignedEvent(eventType, sessionID string) error {
	payload := gatewayEventBody(eventType, sessionID, "0", "0")
	headers := map[string]string{"X-Gateway-Signature": "deadbeef"}
	return t.executeRequest(http.MethodPost, "/api/v1/webhooks/gateway", payload, headers)
}

func gatewayEventBody(eventType, sessionID, amount, fee string) []byte {
	payload, _ := json.Marshal(map[string]any{
		"type":         eventType,
		"session_id":   sessionID,
		"amount_cents": cents(amount),
		"fee_cents":    cents(fee),
		"created_at":   time.Now().UTC().Format(time.RFC3339),
	})
	return payload
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{lease_id}}", t.currentLeaseID.String())
	content = strings.ReplaceAll(content, "{{payment_id}}", t.currentPaymentID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte, extraHeaders map[string]string) error {
	var req *http.Request
	var err error

	url := t.uri + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	for key, value := range extraHeaders {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = body
	t.captureIDs(body)

	return nil
}

// captureIDs remembers entity IDs from create responses so later steps can
// reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	capture := func(m map[string]any) {
		idStr, ok := m["id"].(string)
		if !ok {
			return
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return
		}
		if _, isLease := m["tenant_name"]; isLease {
			t.currentLeaseID = id
			return
		}
		if _, isPayment := m["status"]; isPayment {
			t.currentPaymentID = id
		}
	}

	capture(body)
	if nested, ok := body["payment"].(map[string]any); ok {
		capture(nested)
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %s", string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(slicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	objectMap, ok := object.(map[string]any)
	if !ok {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
