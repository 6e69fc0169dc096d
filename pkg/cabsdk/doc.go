/*
Package cabsdk is a Go client for the QuickC cab aggregator API.

It covers ride search and booking, booking history, the MapMyIndia
geocoding proxy and the health endpoints. The request and response types in
this package are also what the server encodes, so the two cannot drift.

	client := cabsdk.NewClient("http://localhost:5000")

	offers, err := client.Search(ctx, cabsdk.SearchRequest{
		PickupLat:     28.6139,
		PickupLng:     77.2090,
		PickupAddress: "Connaught Place",
		RideType:      cabsdk.RideTypeAuto,
	})

	booking, err := client.Book(ctx, cabsdk.BookRequest{
		Phone:         "+919876543210",
		PickupLat:     28.6139,
		PickupLng:     77.2090,
		PickupAddress: "Connaught Place",
		DriverID:      offers.Offers[0].DriverID,
		Fare:          offers.Offers[0].Fare,
	})

# Errors

Non-2xx responses come back as *APIError. Geocoding failures carry the
provider status and, when the server runs in debug mode, the most recent
sanitized failure log entries:

	_, err := client.Autocomplete(ctx, "india gate")
	var apiErr *cabsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadGateway {
		for _, e := range apiErr.SanitizedLogs {
			fmt.Println(e.Endpoint, e.Status, e.Note)
		}
	}
*/
package cabsdk
