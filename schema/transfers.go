package schema

// Transfer represents a parsed row of transfers.txt.
type Transfer struct {
	FromStopID   string
	ToStopID     string
	TransferType int
}

func ParseTransfer(values map[string]string, row int) (Transfer, error) {
	t := Transfer{
		FromStopID: values["from_stop_id"],
		ToStopID:   values["to_stop_id"],
	}
	if tt := values["transfer_type"]; tt != "" {
		switch tt {
		case "0", "1", "2", "3":
			t.TransferType = int(tt[0] - '0')
		}
	}
	return t, nil
}
