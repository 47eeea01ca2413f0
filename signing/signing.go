// Package signing negotiates request signers by signature version.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/credentials"
)

// Request is the subset of an outgoing request a signer needs.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Payload []byte
}

// Signer authenticates an outgoing request in place.
type Signer interface {
	Version() string
	Sign(req *Request, creds credentials.Value) error
}

// Registry maps signature versions to signer constructors.
type Registry struct {
	signers map[string]func() Signer
}

// NewRegistry creates a Registry with the built-in signers registered.
func NewRegistry() *Registry {
	r := &Registry{signers: map[string]func() Signer{}}
	r.Register("v4", func() Signer { return hmacV4Signer{} })
	return r
}

// Register adds a signer constructor under a version name, replacing any
// existing registration.
func (r *Registry) Register(version string, f func() Signer) {
	r.signers[version] = f
}

// Get returns a signer for the requested signature version. Versions nobody
// registered are an UnknownSignatureVersionError.
func (r *Registry) Get(version string) (Signer, error) {
	f, ok := r.signers[version]
	if !ok {
		return nil, botoerr.NewUnknownSignatureVersionError(version)
	}
	return f(), nil
}

// hmacV4Signer computes an HMAC-SHA256 over the canonical request form and
// sets the Authorization header.
type hmacV4Signer struct{}

func (hmacV4Signer) Version() string { return "v4" }

func (hmacV4Signer) Sign(req *Request, creds credentials.Value) error {
	if req.Headers == nil {
		req.Headers = map[string]string{}
	}
	if creds.SessionToken != "" {
		req.Headers["X-Security-Token"] = creds.SessionToken
	}

	mac := hmac.New(sha256.New, []byte(creds.SecretAccessKey))
	mac.Write([]byte(canonical(req)))
	signature := hex.EncodeToString(mac.Sum(nil))

	req.Headers["Authorization"] = "HMAC-SHA256 Credential=" + creds.AccessKeyID + ", Signature=" + signature
	return nil
}

// canonical serializes the request deterministically: method, path, sorted
// headers, then payload.
func canonical(req *Request) string {
	keys := make([]string, 0, len(req.Headers))
	for k := range req.Headers {
		keys = append(keys, strings.ToLower(k))
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(req.Method)
	b.WriteByte('\n')
	b.WriteString(req.Path)
	b.WriteByte('\n')
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(headerValue(req.Headers, k))
		b.WriteByte('\n')
	}
	b.Write(req.Payload)
	return b.String()
}

func headerValue(headers map[string]string, lower string) string {
	for k, v := range headers {
		if strings.ToLower(k) == lower {
			return v
		}
	}
	return ""
}
