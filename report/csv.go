package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

var csvHeader = []string{"State", "Q_Learning_Policy", "Simple_Policy"}

// WriteCSV writes one row per state in enumeration order.
func WriteCSV(w io.Writer, space mdp.StateSpace, learned, simple mdp.Policy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range space.States {
		row := []string{
			s.String(),
			strconv.Itoa(int(learned.Act(s))),
			strconv.Itoa(int(simple.Act(s))),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
