package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
)

func (c *cli) backupCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "backup",
		Short: "Backup and restore operations",
	}

	var policyFile string
	policyCreate := &cobra.Command{
		Use:   "policy-create",
		Short: "Create a backup policy from a JSON or YAML description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(policyFile)
			if err != nil {
				return errors.Wrap(err, "reading backup policy")
			}

			var policy v82.BackupPolicyDescription
			err = yaml.Unmarshal(b, &policy)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", policyFile)
			}

			c.logRequest("CreateBackupPolicy", policy)
			return c.client.CreateBackupPolicy(cmd.Context(), policy, c.env.Timeout())
		},
	}
	policyCreate.Flags().StringVarP(&policyFile, "file", "f", "", "path of the backup policy JSON or YAML")
	_ = policyCreate.MarkFlagRequired("file")

	var kind string
	var latest bool
	list := &cobra.Command{
		Use:   "list ENTITY_ID",
		Short: "List the backups of an application, service or partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := servicefabric.BackupEntity{Kind: v82.BackupEntityKind(kind), ID: args[0]}
			if !entity.Kind.IsKnown() || entity.Kind == v82.BackupEntityKindInvalid {
				return fmt.Errorf("invalid --kind %q", kind)
			}

			var latestOnly *bool
			if latest {
				latestOnly = to.BoolPtr(true)
			}

			var backups []v82.BackupInfo
			var continuationToken string
			for {
				page, err := c.client.GetBackupList(cmd.Context(), entity, latestOnly, nil, nil, continuationToken, nil, c.env.Timeout())
				if err != nil {
					return err
				}
				backups = append(backups, page.Items...)

				continuationToken = to.String(page.ContinuationToken)
				if continuationToken == "" {
					break
				}
			}

			return c.print(backups)
		},
	}
	list.Flags().StringVar(&kind, "kind", string(v82.BackupEntityKindPartition), "entity kind: Application, Service or Partition")
	list.Flags().BoolVar(&latest, "latest", false, "only list the latest backup of each partition")

	cc.AddCommand(
		&cobra.Command{
			Use:   "policy-list",
			Short: "List the backup policies",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				policies, err := c.client.ListAllBackupPolicies(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(policies)
			},
		},
		&cobra.Command{
			Use:   "policy-show NAME",
			Short: "Show a backup policy",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				policy, err := c.client.GetBackupPolicyByName(cmd.Context(), args[0], c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(policy)
			},
		},
		policyCreate,
		&cobra.Command{
			Use:   "policy-delete NAME...",
			Short: "Delete backup policies",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.forEach(args, func(name string) error {
					return c.client.DeleteBackupPolicy(cmd.Context(), name, c.env.Timeout())
				})
			},
		},
		list,
		&cobra.Command{
			Use:   "progress PARTITION_ID",
			Short: "Show the progress of a partition's latest backup",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				progress, err := c.client.GetPartitionBackupProgress(cmd.Context(), args[0], c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(progress)
			},
		},
	)

	return cc
}
