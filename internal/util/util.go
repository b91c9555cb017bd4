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

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func FloatPointer(f float64) *float64 {
	return &f
}

func StringPointer(s string) *string {
	return &s
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

type Secrets struct {
	RatesApiUrl string    `json:"ratesApiUrl"`
	Db          DbSecrets `json:"db"`
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

func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("PORTFOLIO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("PORTFOLIO_ENV") == "test" {
		secretsFile = "secrets-test.json"
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
