// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InitiateLoginRequest starts an SRP handshake.
type InitiateLoginRequest struct {
	Username string `json:"username"`
}

// InitiateLoginResponse carries the salt, KDF parameters and the server
// public ephemeral B. Its shape is identical for existing and unknown users.
type InitiateLoginResponse struct {
	Salt             []byte    `json:"salt"`
	ServerEphemeral  []byte    `json:"serverEphemeral"`
	EncryptionAlgo   string    `json:"encryptionAlgo"`
	EncryptionParams KDFParams `json:"encryptionParams"`
}

// ValidateLoginRequest completes an SRP handshake with the client public
// ephemeral A and the client proof M1.
type ValidateLoginRequest struct {
	Username        string `json:"username"`
	ClientEphemeral []byte `json:"clientEphemeral"`
	ClientProof     []byte `json:"clientProof"`
	RememberMe      bool   `json:"rememberMe"`
}

// ValidateTwoFactorRequest finishes a login that required a second factor.
// Code is either a TOTP code or a recovery code depending on the endpoint.
type ValidateTwoFactorRequest struct {
	Username       string `json:"username"`
	TwoFactorToken string `json:"twoFactorToken"`
	Code           string `json:"code"`
	RememberMe     bool   `json:"rememberMe"`
}

// ValidateLoginResponse is shared by every validate endpoint. Tokens is nil
// while a second factor is still required.
type ValidateLoginResponse struct {
	RequiresTwoFactor bool       `json:"requiresTwoFactor"`
	ServerProof       []byte     `json:"serverProof,omitempty"`
	TwoFactorToken    string     `json:"twoFactorToken,omitempty"`
	Tokens            *TokenPair `json:"tokens,omitempty"`
}

// TokenPair is a short-lived access token plus a rotating refresh token.
type TokenPair struct {
	AccessToken          string    `json:"accessToken"`
	RefreshToken         string    `json:"refreshToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
}

// RefreshRequest is used by both the refresh and the revoke endpoints.
type RefreshRequest struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
