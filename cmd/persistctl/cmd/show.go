package cmd

import (
	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/store"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the full settings record",
	Long: `Show the full decoded settings record, UI flags, and store counters.

Example:
  persistctl show`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		s := st.Settings()
		cmd.Printf("Tuned frequency:      %d Hz\n", s.TunedFrequency)
		cmd.Printf("Correction:           %d ppb\n", s.CorrectionPPB)
		cmd.Printf("Tone mix:             %d%%\n", s.ToneMix)
		cmd.Printf("AFSK mark/space:      %d / %d Hz\n", s.AFSKMarkFreq, s.AFSKSpaceFreq)
		cmd.Printf("Modem baudrate:       %d\n", s.ModemBaudrate)
		cmd.Printf("Modem bandwidth:      %d Hz\n", s.ModemBandwidth)
		cmd.Printf("Modem repeat:         %d\n", s.ModemRepeat)
		cmd.Printf("Modem definition:     %d\n", s.ModemDefIndex)
		cmd.Printf("Serial format:        %d data, parity %d, %d stop\n",
			s.SerialFormat.DataBits, s.SerialFormat.Parity, s.SerialFormat.StopBits)
		cmd.Printf("CLKOUT frequency:     %d Hz\n", st.ClkoutFreq())
		cmd.Printf("Pager last/ignore:    %d / %d\n", s.PagerLastAddress, s.PagerIgnoreAddress)
		cmd.Printf("Hardware config:      %d\n", st.HardwareConfig())

		if seconds, active := st.BacklightTimer(); active {
			cmd.Printf("Backlight timer:      %d s\n", seconds)
		} else {
			cmd.Printf("Backlight timer:      always on\n")
		}

		cal := st.TouchCalibration()
		cmd.Printf("Touch calibration:    A=%d B=%d C=%d D=%d E=%d F=%d K=%d\n",
			cal.A, cal.B, cal.C, cal.D, cal.E, cal.F, cal.K)

		cmd.Println("\nFlags:")
		for _, fi := range store.Flags() {
			cmd.Printf("  %-20s %v\n", fi.Name, st.Flag(fi.Flag))
		}

		stats := st.Stats()
		cmd.Printf("\nRepairs: %d  Persists: %d  Integrity failures: %d\n",
			stats.Repairs, stats.Persists, stats.IntegrityFailures)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
