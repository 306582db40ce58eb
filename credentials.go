package mpesa

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"time"
)

const (
	// DefaultInitiatorPassword is the sandbox initiator password published by Safaricom.
	DefaultInitiatorPassword = "Safcom496!"
	// DefaultPassKey is the sandbox STK-Push pass key for shortcode 174379.
	DefaultPassKey = "bfb279f9aa9bdbcf158e97dd71a467cd2e0c893059b10f78e6b72ada1ed2c919"

	timestampLayout = "20060102150405"
)

// securityCredential encrypts the initiator password with the environment's
// certificate. The output differs on every call because of PKCS#1 v1.5 padding.
func (c *Client) securityCredential() (string, error) {
	block, _ := pem.Decode([]byte(c.environment.Certificate()))
	if block == nil {
		return "", newEncryptionError("no PEM block found in environment certificate", nil)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return "", newEncryptionError("error parsing certificate", err)
	}

	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return "", newEncryptionError("certificate does not carry an RSA public key", nil)
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, []byte(c.InitiatorPassword()))
	if err != nil {
		return "", newEncryptionError("error encrypting initiator password", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// stkPassword derives the STK-Push Password and Timestamp from a single clock reading.
func stkPassword(shortCode, passKey string, now time.Time) (password, timestamp string) {
	timestamp = now.Local().Format(timestampLayout)
	password = base64.StdEncoding.EncodeToString([]byte(shortCode + passKey + timestamp))
	return password, timestamp
}
