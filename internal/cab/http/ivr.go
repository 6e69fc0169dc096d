package http

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/akshat7606/QuickC/internal/cab/service"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

const (
	ivrWelcome = "Welcome to Universal Cab Aggregator! Please hold while we book your ride."
	ivrApology = "Sorry, we couldn't process your booking. Please try again later."
)

// twiml is the subset of Twilio's voice markup the IVR answers with.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Say     []string `xml:"Say"`
}

type IVRHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP handles the Twilio voice webhook
//
//	@Summary		IVR booking webhook
//	@Description	Twilio voice webhook. Books a ride for the caller and answers with TwiML.
//	@Description	Failures still answer 200 with an apology so the call is not dropped.
//	@Tags			Rides
//	@Accept			x-www-form-urlencoded
//	@Produce		xml
//	@Param			From	formData	string	true	"Caller phone number"
//	@Success		200		{string}	string	"TwiML document"
//	@Failure		429		{object}	cabsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/ivr [post].
func (h *IVRHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		log.Warn("malformed ivr webhook", "error", err)
		writeTwiML(w, ivrApology)
		return
	}

	b, err := h.BookingService.BookIVR(ctx, r.PostForm.Get("From"))
	if err != nil {
		log.Error("ivr booking failed", "error", err)
		writeTwiML(w, ivrApology)
		return
	}

	driver := b.DriverName
	if first, _, ok := strings.Cut(driver, " "); ok {
		driver = first
	}
	writeTwiML(w,
		ivrWelcome,
		fmt.Sprintf("Your ride has been booked! Booking ID is %s. Driver %s will reach you in %d minutes. Thank you!",
			b.BookingID, driver, b.ETAMinutes),
	)
}

func writeTwiML(w http.ResponseWriter, say ...string) {
	out, err := xml.Marshal(twiml{Say: say})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}
