package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	keyChain crypto.KeyChain
	params   models.KDFParams
	clientID string
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain, params models.KDFParams, clientID string) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, keyChain: keyChain, params: params, clientID: clientID}
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) (models.RegisterResponse, error) {
	if username == "" || password == "" {
		return models.RegisterResponse{}, ErrInvalidDataProvided
	}

	credentials, err := a.keyChain.NewCredentials(password, a.params)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("error deriving credentials: %w", err)
	}

	registered, err := a.adapter.Register(ctx, models.RegisterRequest{
		Username:         username,
		Salt:             credentials.Salt,
		Verifier:         credentials.Verifier,
		EncryptionAlgo:   models.DefaultEncryptionAlgo,
		EncryptionParams: a.params,
		Version:          VaultDataVersion,
		ClientID:         a.clientID,
	})
	if err != nil {
		return models.RegisterResponse{}, mapAdapterError(err)
	}

	return registered, nil
}

// Login:
//  1. asks the server for the salt, the KDF parameters and B;
//  2. derives the keys and computes A and the proof M1;
//  3. sends A and M1 and checks the server proof M2.
func (a *clientAuthService) Login(ctx context.Context, username, password string, rememberMe bool) (ClientLogin, error) {
	initiated, err := a.adapter.InitiateLogin(ctx, username)
	if err != nil {
		return ClientLogin{}, mapAdapterError(err)
	}

	keys, err := a.keyChain.DeriveKeys(password, initiated.Salt, initiated.EncryptionParams)
	if err != nil {
		return ClientLogin{}, fmt.Errorf("error deriving keys: %w", err)
	}

	clientEphemeral, clientProof, session, err := proveKeys(keys, initiated)
	if err != nil {
		return ClientLogin{}, err
	}

	validated, err := a.adapter.ValidateLogin(ctx, models.ValidateLoginRequest{
		Username:        username,
		ClientEphemeral: clientEphemeral,
		ClientProof:     clientProof,
		RememberMe:      rememberMe,
	})
	if err != nil {
		return ClientLogin{}, mapAdapterError(err)
	}

	if err = session.VerifyServer(validated.ServerProof); err != nil {
		a.adapter.SetTokens(models.TokenPair{})
		return ClientLogin{}, ErrServerProofInvalid
	}

	return ClientLogin{
		Keys:              keys,
		RequiresTwoFactor: validated.RequiresTwoFactor,
		TwoFactorToken:    validated.TwoFactorToken,
	}, nil
}

func (a *clientAuthService) CompleteTwoFactor(ctx context.Context, username, twoFactorToken, code string, recovery bool) error {
	req := models.ValidateTwoFactorRequest{
		Username:       username,
		TwoFactorToken: twoFactorToken,
		Code:           code,
	}

	validate := a.adapter.ValidateTwoFactor
	if recovery {
		validate = a.adapter.ValidateRecoveryCode
	}

	if _, err := validate(ctx, req); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return mapAdapterError(a.adapter.Revoke(ctx))
}

func (a *clientAuthService) EnableTwoFactor(ctx context.Context) (models.TwoFactorSetupResponse, error) {
	setup, err := a.adapter.SetupTwoFactor(ctx)
	if err != nil {
		return models.TwoFactorSetupResponse{}, mapAdapterError(err)
	}
	return setup, nil
}

func (a *clientAuthService) ConfirmTwoFactor(ctx context.Context, code string) ([]string, error) {
	confirmed, err := a.adapter.ConfirmTwoFactor(ctx, code)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return confirmed.RecoveryCodes, nil
}

func (a *clientAuthService) CheckVersion(ctx context.Context, clientVersion string) (models.StatusResponse, error) {
	status, err := a.adapter.Status(ctx, clientVersion)
	if err != nil {
		return models.StatusResponse{}, mapAdapterError(err)
	}
	return status, nil
}

// proveKeys computes the client side of a handshake answered with initiated.
func proveKeys(keys crypto.VaultKeys, initiated models.InitiateLoginResponse) ([]byte, []byte, *srp.Client, error) {
	session, err := srp.NewClient(srp.RFC5054Group2048, keys.SRPPrivateKey(initiated.Salt))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error starting handshake: %w", err)
	}

	clientProof, err := session.ComputeProof(initiated.ServerEphemeral)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error computing proof: %w", err)
	}

	return session.PublicEphemeral(), clientProof, session, nil
}
