package cli

import "github.com/spf13/cobra"

func newHealthCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the API health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := rt.app.Client().Health(cmd.Context())
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), h)
		},
	}
}

func newPingCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Ping the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := rt.app.Client().Ping(cmd.Context())
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), msg)
		},
	}
}

func newWelcomeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Fetch the API welcome message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := rt.app.Client().Welcome(cmd.Context())
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), msg)
		},
	}
}
