package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sort"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func (c *cli) applicationCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:     "application",
		Aliases: []string{"app"},
		Short:   "Application operations",
	}

	var typeName string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the applications in the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applications, err := c.client.ListAllApplications(cmd.Context(), typeName)
			if err != nil {
				return err
			}
			return c.print(applications)
		},
	}
	list.Flags().StringVar(&typeName, "type", "", "only list applications of this type")

	var description v82.ApplicationDescription
	var parameters map[string]string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an application from a provisioned application type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			description.ParameterList = applicationParameters(parameters)

			c.logRequest("CreateApplication", description)
			return c.client.CreateApplication(cmd.Context(), description, c.env.Timeout())
		},
	}
	create.Flags().StringVar(&description.Name, "name", "", "application name, e.g. fabric:/app")
	create.Flags().StringVar(&description.TypeName, "type", "", "application type name")
	create.Flags().StringVar(&description.TypeVersion, "version", "", "application type version")
	create.Flags().StringToStringVar(&parameters, "parameter", nil, "application parameter override as key=value")
	for _, flag := range []string{"name", "type", "version"} {
		_ = create.MarkFlagRequired(flag)
	}

	var force bool
	del := &cobra.Command{
		Use:   "delete APPLICATION_ID...",
		Short: "Delete applications",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var forceRemove *bool
			if force {
				forceRemove = to.BoolPtr(true)
			}

			return c.forEach(args, func(id string) error {
				return c.client.DeleteApplication(cmd.Context(), id, forceRemove, c.env.Timeout())
			})
		},
	}
	del.Flags().BoolVar(&force, "force", false, "remove without a graceful shutdown")

	cc.AddCommand(
		list,
		&cobra.Command{
			Use:   "types",
			Short: "List the provisioned application types",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				types, err := c.client.ListAllApplicationTypes(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(types)
			},
		},
		&cobra.Command{
			Use:   "show APPLICATION_ID",
			Short: "Show an application",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				application, err := c.client.GetApplicationInfo(cmd.Context(), args[0], c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(application)
			},
		},
		&cobra.Command{
			Use:   "health APPLICATION_ID",
			Short: "Show an application's health",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				health, err := c.client.GetApplicationHealth(cmd.Context(), args[0], nil, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(health)
			},
		},
		create,
		del,
	)

	return cc
}

// applicationParameters returns the parameters sorted by key
func applicationParameters(parameters map[string]string) []v82.ApplicationParameter {
	if len(parameters) == 0 {
		return nil
	}

	keys := make([]string, 0, len(parameters))
	for k := range parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]v82.ApplicationParameter, 0, len(keys))
	for _, k := range keys {
		list = append(list, v82.ApplicationParameter{Key: k, Value: parameters[k]})
	}

	return list
}
