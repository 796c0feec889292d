package util

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

func StringPointer(s string) *string {
	return &s
}

func Int64Pointer(i int64) *int64 {
	return &i
}

func Int32Pointer(i int32) *int32 {
	return &i
}

func FloatPointer(f float64) *float64 {
	return &f
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type Secrets struct {
	Db              DbSecrets     `json:"db"`
	ChatGPTApiKey   string        `json:"gpt"`
	Alpaca          AlpacaSecrets `json:"alpaca"`
	SES             SESSecrets    `json:"ses"`
	Jwt             string        `json:"jwt"`
	MarketData      string        `json:"marketDataProvider"` // "yahoo" (default) or "alpaca"
	BenchmarkAssets []string      `json:"benchmarkAssets"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
}

type SESSecrets struct {
	Region     string `json:"region"`
	FromEmail  string `json:"fromEmail"`
	AlertEmail string `json:"alertEmail"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func (t DbSecrets) ToUrl() string {
	sslMode := "disable"
	if t.EnableSsl {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		t.User, t.Password, t.Host, t.Port, t.Database, sslMode)
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("PERFHISTORY_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("PERFHISTORY_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	if override := os.Getenv("PERFHISTORY_SECRETS_FILE"); override != "" {
		secretsFile = override
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}
