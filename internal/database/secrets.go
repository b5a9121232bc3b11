package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciaisSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LeitorSecret abstrai o Secrets Manager
type LeitorSecret interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Credenciais prefere DB_USERNAME/DB_PASSWORD; sem elas, busca o secret na AWS
func Credenciais(ctx context.Context, secretID string) (string, string, error) {
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")
	if usuario != "" && senha != "" {
		return usuario, senha, nil
	}
	if secretID == "" {
		return "", "", errors.New("defina DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", "", fmt.Errorf("carregar config AWS: %w", err)
	}
	return credenciaisDoSecret(ctx, secretsmanager.NewFromConfig(cfg), secretID)
}

func credenciaisDoSecret(ctx context.Context, cli LeitorSecret, secretID string) (string, string, error) {
	out, err := cli.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("ler secret %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", "", fmt.Errorf("secret %s sem SecretString", secretID)
	}

	var c credenciaisSecret
	if err := json.Unmarshal([]byte(*out.SecretString), &c); err != nil {
		return "", "", fmt.Errorf("interpretar secret %s: %w", secretID, err)
	}
	return c.Username, c.Password, nil
}
