package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Samal2005/sound-chat/pkg/device"
)

var deviceNameStyle = lipgloss.NewStyle().Bold(true)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the host's audio devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := device.List()
		if err != nil {
			return err
		}
		for _, info := range infos {
			marker := " "
			switch {
			case info.DefaultInput && info.DefaultOutput:
				marker = "*"
			case info.DefaultInput:
				marker = "i"
			case info.DefaultOutput:
				marker = "o"
			}
			fmt.Printf("%s %s  in:%d out:%d %gHz\n",
				marker, deviceNameStyle.Render(info.Name),
				info.InputChannels, info.OutputChannels, info.SampleRate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
