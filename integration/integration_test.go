//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	fbbotw "github.com/sadmanHsn/fbbotw"
)

var (
	pageToken string
	testPSID  string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	pageToken = os.Getenv(fbbotw.EnvAccessToken)
	testPSID = os.Getenv("FBBOTW_TEST_PSID")

	if pageToken == "" {
		os.Stderr.WriteString("Skipping integration tests: PAGE_ACCESS_TOKEN not set\n")
		os.Exit(0)
	}

	if testPSID == "" {
		os.Stderr.WriteString("Skipping integration tests: FBBOTW_TEST_PSID not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests against the live Graph API...\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *fbbotw.Client {
	t.Helper()
	return fbbotw.New(fbbotw.WithAccessToken(pageToken))
}

func TestIntegration_SendTextMessage(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	resp, err := client.SendTextMessage(ctx, testPSID, "fbbotw integration test")
	if err != nil {
		t.Fatalf("SendTextMessage() error = %v", err)
	}
	if !resp.OK() {
		t.Fatalf("SendTextMessage() status = %s, body = %s", resp.Status, resp.Body)
	}

	var result struct {
		RecipientID string `json:"recipient_id"`
		MessageID   string `json:"message_id"`
	}
	if err := resp.Decode(&result); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if result.MessageID == "" {
		t.Error("message_id is empty")
	}
	t.Logf("Sent message: %s", result.MessageID)
}

func TestIntegration_SenderActions(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	for _, action := range []fbbotw.SenderAction{
		fbbotw.SenderActionTypingOn,
		fbbotw.SenderActionTypingOff,
		fbbotw.SenderActionMarkSeen,
	} {
		resp, err := client.SendSenderAction(ctx, testPSID, action)
		if err != nil {
			t.Fatalf("SendSenderAction(%s) error = %v", action, err)
		}
		if !resp.OK() {
			t.Errorf("SendSenderAction(%s) status = %s, body = %s", action, resp.Status, resp.Body)
		}
	}
}

func TestIntegration_GetUserProfile(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	profile, err := client.GetUserProfile(ctx, testPSID)
	if err != nil {
		t.Fatalf("GetUserProfile() error = %v", err)
	}
	if profile.FirstName == "" {
		t.Error("first_name is empty")
	}
	t.Logf("Profile: %s %s", profile.FirstName, profile.LastName)
}

func TestIntegration_GreetingAndStartButton(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	resp, err := client.SetGreetingTexts(ctx, []fbbotw.Greeting{
		{Locale: "default", Text: "Hello from the integration suite"},
	})
	if err != nil {
		t.Fatalf("SetGreetingTexts() error = %v", err)
	}
	if !resp.OK() {
		t.Errorf("SetGreetingTexts() status = %s, body = %s", resp.Status, resp.Body)
	}

	resp, err = client.SetStartButton(ctx, "GET_STARTED")
	if err != nil {
		t.Fatalf("SetStartButton() error = %v", err)
	}
	if !resp.OK() {
		t.Errorf("SetStartButton() status = %s, body = %s", resp.Status, resp.Body)
	}
}
