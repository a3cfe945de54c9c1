// Package cookie provides a signed-cookie manager. Values are authenticated
// with HMAC-SHA256; multiple secrets enable key rotation, where the first
// secret signs and every secret verifies, so old cookies stay valid during
// a transition.
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	mgr.SetSigned(w, "sid", token, cookie.WithSecure(true))
//	token, err := mgr.GetSigned(r, "sid")
package cookie
