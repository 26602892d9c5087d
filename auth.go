package opensonic

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
)

const saltLength = 16

// authParams adds the credential portion of the request parameters.
//
// Token mode derives a fresh random salt per request and sends
// t = md5(password + salt), so the raw password never crosses the
// wire. When the configuration carries a pre-supplied salt/token pair
// instead of a password, that pair is passed through unchanged. Legacy
// mode sends the password hex-obfuscated with the enc: prefix; that is
// a documented wire format for pre-token servers, not encryption.
func authParams(cfg *Config, v url.Values) {
	v.Set("u", cfg.Username)

	if cfg.LegacyAuth {
		v.Set("p", "enc:"+hexEnc(cfg.Password))
		return
	}

	salt, token := cfg.Salt, cfg.Token
	if cfg.Password != "" {
		salt = newSalt()
		token = authToken(cfg.Password, salt)
	}
	v.Set("s", salt)
	v.Set("t", token)
}

// authToken computes the salted credential token.
func authToken(password, salt string) string {
	sum := md5.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// newSalt returns a 16-hex-character random salt. The salt only has to
// resist dictionary precomputation, so CSPRNG bytes digested to hex
// are sufficient.
func newSalt() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	sum := md5.Sum(buf)
	return hex.EncodeToString(sum[:])[:saltLength]
}

// hexEnc encodes each byte of raw as two uppercase hex digits, the
// legacy password obfuscation format.
func hexEnc(raw string) string {
	out := make([]byte, 0, len(raw)*2)
	for i := 0; i < len(raw); i++ {
		out = fmt.Appendf(out, "%02X", raw[i])
	}
	return string(out)
}
