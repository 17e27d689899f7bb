// Package fred provides a typed client for the FRED economic data API of the
// Federal Reserve Bank of St. Louis.
//
// Every endpoint takes a parameter struct whose zero value carries the API
// defaults, validates it locally, issues one GET request and decodes the XML
// response into typed records.
//
// # Usage
//
//	client, err := fred.New(apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	obs, err := client.GetSeriesObservations(ctx, fred.ObservationsParams{
//		SeriesID: "GNPCA",
//		Units:    fred.UnitsPercentChange,
//	})
//
// # Error Handling
//
// Errors match one of the sentinels with errors.Is:
//
//   - ErrInvalidParameter: rejected before any request was made
//   - ErrTransport: connection failure, timeout or non-2xx status
//   - ErrMalformedResponse: invalid XML or a missing required field
//   - ErrUnknownEnumValue: a wire string outside the known vocabulary
//
// Transport failures carry the HTTP status and the API's error message:
//
//	var terr *fred.TransportError
//	if errors.As(err, &terr) && terr.IsBadRequest() {
//		fmt.Println(terr.Message)
//	}
package fred
