// Package relaypulse provides the HTTP client for the RelayPulse status API.
//
// The client performs exactly one GET against StatusURL per FetchStatus call
// and hands back the body as a generic JSON tree (Report). It sends no custom
// headers and no credentials, and it does not interpret HTTP status codes:
// whatever body the server returns is parsed.
//
// # Errors
//
// Every failure is a *FetchError whose Kind tells the three failure classes
// apart:
//
//   - KindTransport: DNS, refused connection, timeout, cancelled context
//   - KindDecode: body could not be read completely or is not UTF-8 text
//   - KindParse: body is not exactly one well-formed JSON document
//
// No client-side timeout is configured unless WithTimeout is passed, so a
// hung connection blocks until ctx is cancelled.
//
//	client := relaypulse.NewClient(relaypulse.WithTimeout(10 * time.Second))
//	report, err := client.FetchStatus(ctx)
//	if err != nil {
//		var fe *relaypulse.FetchError
//		if errors.As(err, &fe) {
//			log.Printf("%s failure: %v", fe.Kind, fe)
//		}
//	}
package relaypulse
