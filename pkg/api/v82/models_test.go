package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/to"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
	"github.com/Azure/azure-servicefabric-go/pkg/api/util/pointerutils"
	"github.com/Azure/azure-servicefabric-go/pkg/util/cmp"
)

func TestConstructorRoundTrip(t *testing.T) {
	runAt := date.Time{Time: time.Date(2024, 1, 1, 2, 30, 0, 0, time.UTC)}

	for _, tt := range []struct {
		name string
		in   interface{}
		new  func() interface{}
	}{
		{
			name: "HealthInformation",
			in:   NewHealthInformation("System.FM", "State", HealthStateOk),
			new:  func() interface{} { return &HealthInformation{} },
		},
		{
			name: "HealthEvent",
			in:   NewHealthEvent("Watchdog", "Disk", HealthStateWarning),
			new:  func() interface{} { return &HealthEvent{} },
		},
		{
			name: "RestartNodeDescription",
			in:   NewRestartNodeDescription("0"),
			new:  func() interface{} { return &RestartNodeDescription{} },
		},
		{
			name: "ResumeClusterUpgradeDescription",
			in:   NewResumeClusterUpgradeDescription("UD1"),
			new:  func() interface{} { return &ResumeClusterUpgradeDescription{} },
		},
		{
			name: "ApplicationDescription",
			in:   NewApplicationDescription("fabric:/app", "AppType", "1.0.0"),
			new:  func() interface{} { return &ApplicationDescription{} },
		},
		{
			name: "ApplicationParameter",
			in:   NewApplicationParameter("InstanceCount", "3"),
			new:  func() interface{} { return &ApplicationParameter{} },
		},
		{
			name: "ApplicationUpgradeDescription",
			in:   NewApplicationUpgradeDescription("fabric:/app", "2.0.0"),
			new:  func() interface{} { return &ApplicationUpgradeDescription{} },
		},
		{
			name: "ResumeApplicationUpgradeDescription",
			in:   NewResumeApplicationUpgradeDescription("UD0"),
			new:  func() interface{} { return &ResumeApplicationUpgradeDescription{} },
		},
		{
			name: "ProvisionApplicationTypeDescription",
			in:   NewProvisionApplicationTypeDescription(true, "AppTypePkg"),
			new:  func() interface{} { return &ProvisionApplicationTypeDescription{} },
		},
		{
			name: "ExternalStoreProvisionApplicationTypeDescription",
			in:   NewExternalStoreProvisionApplicationTypeDescription(false, "https://example.com/app.sfpkg", "AppType", "1.0.0"),
			new:  func() interface{} { return &ExternalStoreProvisionApplicationTypeDescription{} },
		},
		{
			name: "UnprovisionApplicationTypeDescriptionInfo",
			in:   NewUnprovisionApplicationTypeDescriptionInfo("1.0.0"),
			new:  func() interface{} { return &UnprovisionApplicationTypeDescriptionInfo{} },
		},
		{
			name: "StatefulServiceDescription",
			in:   NewStatefulServiceDescription("fabric:/app/svc", "SvcType", NewUniformInt64RangePartitionSchemeDescription(3, "0", "99"), 3, 2, true),
			new:  func() interface{} { return &StatefulServiceDescription{} },
		},
		{
			name: "StatelessServiceDescription",
			in:   NewStatelessServiceDescription("fabric:/app/web", "WebType", NewSingletonPartitionSchemeDescription(), -1),
			new:  func() interface{} { return &StatelessServiceDescription{} },
		},
		{
			name: "NamedPartitionSchemeDescription",
			in:   NewNamedPartitionSchemeDescription("east", "west"),
			new:  func() interface{} { return &NamedPartitionSchemeDescription{} },
		},
		{
			name: "ServiceLoadMetricDescription",
			in:   NewServiceLoadMetricDescription("MemoryInMb"),
			new:  func() interface{} { return &ServiceLoadMetricDescription{} },
		},
		{
			name: "ServiceCorrelationDescription",
			in:   NewServiceCorrelationDescription(ServiceCorrelationSchemeAffinity, "fabric:/app/db"),
			new:  func() interface{} { return &ServiceCorrelationDescription{} },
		},
		{
			name: "BackupPolicyDescription",
			in:   NewBackupPolicyDescription("hourly", false, 5, NewFrequencyBasedBackupScheduleDescription("PT1H"), NewFileShareBackupStorageDescription(`\\share\backups`)),
			new:  func() interface{} { return &BackupPolicyDescription{} },
		},
		{
			name: "TimeBasedBackupScheduleDescription",
			in:   NewTimeBasedBackupScheduleDescription(BackupScheduleFrequencyTypeDaily, runAt),
			new:  func() interface{} { return &TimeBasedBackupScheduleDescription{} },
		},
		{
			name: "AzureBlobBackupStorageDescription",
			in:   NewAzureBlobBackupStorageDescription("DefaultEndpointsProtocol=https", "backups"),
			new:  func() interface{} { return &AzureBlobBackupStorageDescription{} },
		},
		{
			name: "BasicRetentionPolicyDescriptionBasic",
			in:   NewBasicRetentionPolicyDescriptionBasic("P7D"),
			new:  func() interface{} { return &BasicRetentionPolicyDescriptionBasic{} },
		},
		{
			name: "RestorePartitionDescription",
			in:   NewRestorePartitionDescription("3a056ac9-7206-43c3-8424-6f6103003eba", `Application1\Service1\Partition1`),
			new:  func() interface{} { return &RestorePartitionDescription{} },
		},
		{
			name: "EnableBackupDescription",
			in:   NewEnableBackupDescription("hourly"),
			new:  func() interface{} { return &EnableBackupDescription{} },
		},
		{
			name: "ChaosParametersDictionaryItem",
			in:   NewChaosParametersDictionaryItem("adhoc", ChaosParameters{}),
			new:  func() interface{} { return &ChaosParametersDictionaryItem{} },
		},
		{
			name: "RepairTask",
			in:   NewRepairTask("Azure/PlatformUpdate/1", "System.Reboot"),
			new:  func() interface{} { return &RepairTask{} },
		},
		{
			name: "RepairTaskCancelDescription",
			in:   NewRepairTaskCancelDescription("Azure/PlatformUpdate/1"),
			new:  func() interface{} { return &RepairTaskCancelDescription{} },
		},
		{
			name: "RepairTaskDeleteDescription",
			in:   NewRepairTaskDeleteDescription("Azure/PlatformUpdate/1"),
			new:  func() interface{} { return &RepairTaskDeleteDescription{} },
		},
		{
			name: "RepairTaskApproveDescription",
			in:   NewRepairTaskApproveDescription("Azure/PlatformUpdate/1"),
			new:  func() interface{} { return &RepairTaskApproveDescription{} },
		},
		{
			name: "RepairTaskUpdateHealthPolicyDescription",
			in:   NewRepairTaskUpdateHealthPolicyDescription("Azure/PlatformUpdate/1"),
			new:  func() interface{} { return &RepairTaskUpdateHealthPolicyDescription{} },
		},
		{
			name: "NodeImpact",
			in:   NewNodeImpact("_Node_0"),
			new:  func() interface{} { return &NodeImpact{} },
		},
		{
			name: "FabricError",
			in:   NewFabricError(FabricErrorCodesFabricENodeNotFound),
			new:  func() interface{} { return &FabricError{} },
		},
		{
			name: "ImageStoreCopyDescription",
			in:   NewImageStoreCopyDescription("Store/AppPkg", "AppPkgCopy"),
			new:  func() interface{} { return &ImageStoreCopyDescription{} },
		},
		{
			name: "ContainerAPIRequestBody",
			in:   NewContainerAPIRequestBody("/containers/json"),
			new:  func() interface{} { return &ContainerAPIRequestBody{} },
		},
		{
			name: "ApplicationResourceDescription",
			in:   NewApplicationResourceDescription("helloWorldApp"),
			new:  func() interface{} { return &ApplicationResourceDescription{} },
		},
		{
			name: "ServiceResourceDescription",
			in:   NewServiceResourceDescription("helloWorldService", OperatingSystemTypeLinux, *NewContainerCodePackageProperties("helloWorldCode", "seabreeze/sbz-helloworld:1.0-alpine", 1, 0.5)),
			new:  func() interface{} { return &ServiceResourceDescription{} },
		},
		{
			name: "ImageRegistryCredential",
			in:   NewImageRegistryCredential("example.azurecr.io", "admin"),
			new:  func() interface{} { return &ImageRegistryCredential{} },
		},
		{
			name: "SecretResourceDescription",
			in: NewSecretResourceDescription("dbPassword", &InlinedValueSecretResourceProperties{
				SecretResourceProperties: SecretResourceProperties{Kind: SecretKindInlinedValue},
			}),
			new: func() interface{} { return &SecretResourceDescription{} },
		},
		{
			name: "SecretValueResourceDescription",
			in:   NewSecretValueResourceDescription("v1", "hunter2"),
			new:  func() interface{} { return &SecretValueResourceDescription{} },
		},
		{
			name: "VolumeResourceDescription",
			in:   NewVolumeResourceDescription("sharedVolume", "account", "share"),
			new:  func() interface{} { return &VolumeResourceDescription{} },
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatal(err)
			}

			got := tt.new()
			err = json.Unmarshal(b, got)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(got, tt.in); diff != "" {
				t.Errorf("%s\n%s", b, diff)
			}
		})
	}
}

func TestOptionalFieldsOmitted(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   interface{}
		want string
	}{
		{
			name: "application description",
			in:   NewApplicationDescription("fabric:/app", "AppType", "1.0.0"),
			want: `{"Name":"fabric:/app","TypeName":"AppType","TypeVersion":"1.0.0"}`,
		},
		{
			name: "health information",
			in:   NewHealthInformation("Watchdog", "Disk", HealthStateError),
			want: `{"SourceId":"Watchdog","Property":"Disk","HealthState":"Error"}`,
		},
		{
			name: "empty node list",
			in:   &PagedNodeInfoList{},
			want: `{}`,
		},
		{
			name: "required bool and int kept at zero value",
			in:   NewBackupPolicyDescription("p", false, 0, NewFrequencyBasedBackupScheduleDescription("PT5M"), NewFileShareBackupStorageDescription(`\\s`)),
			want: `{"Name":"p","AutoRestoreOnDataLoss":false,"MaxIncrementalBackups":0,"Schedule":{"ScheduleKind":"FrequencyBased","Interval":"PT5M"},"Storage":{"StorageKind":"FileShare","Path":"\\\\s"}}`,
		},
		{
			name: "discriminator set by marshaller",
			in:   &NodeRepairTargetDescription{NodeNames: []string{"_Node_0"}},
			want: `{"Kind":"Node","NodeNames":["_Node_0"]}`,
		},
		{
			name: "mesh resources use lower camel case",
			in:   NewVolumeResourceDescription("v", "a", "s"),
			want: `{"name":"v","properties":{"provider":"SFAzureFile","azureFileParameters":{"accountName":"a","shareName":"s"}}}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatal(err)
			}

			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "utc",
			in:   "2024-05-01T12:30:45Z",
			want: time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name: "offset",
			in:   "2024-05-01T14:30:45+02:00",
			want: time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name: "sub-second",
			in:   "2024-05-01T12:30:45.123456789Z",
			want: time.Date(2024, 5, 1, 12, 30, 45, 123456789, time.UTC),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var event HealthEvent
			err := json.Unmarshal([]byte(`{"SourceId":"s","Property":"p","HealthState":"Ok","SourceUtcTimestamp":"`+tt.in+`"}`), &event)
			if err != nil {
				t.Fatal(err)
			}

			if !event.SourceUtcTimestamp.Equal(tt.want) {
				t.Fatalf("decoded %s, want %s", event.SourceUtcTimestamp, tt.want)
			}

			b, err := json.Marshal(event)
			if err != nil {
				t.Fatal(err)
			}

			var again HealthEvent
			err = json.Unmarshal(b, &again)
			if err != nil {
				t.Fatal(err)
			}

			if !again.SourceUtcTimestamp.Equal(tt.want) {
				t.Errorf("round tripped to %s, want %s", again.SourceUtcTimestamp, tt.want)
			}
		})
	}
}

func TestUnions(t *testing.T) {
	t.Run("health evaluations", func(t *testing.T) {
		var health ClusterHealth
		err := json.Unmarshal([]byte(`{
			"AggregatedHealthState": "Error",
			"UnhealthyEvaluations": [
				{"HealthEvaluation": {"Kind": "Nodes", "AggregatedHealthState": "Error", "TotalCount": 5, "UnhealthyEvaluations": [
					{"HealthEvaluation": {"Kind": "Node", "NodeName": "_Node_0", "AggregatedHealthState": "Error"}}
				]}},
				{"HealthEvaluation": {"Kind": "UpgradeDomainNodes", "AggregatedHealthState": "Warning", "Description": "UD1"}}
			]
		}`), &health)
		if err != nil {
			t.Fatal(err)
		}

		want := ClusterHealth{
			EntityHealth: EntityHealth{
				AggregatedHealthState: pointerutils.ToPtr(HealthStateError),
				UnhealthyEvaluations: []HealthEvaluationWrapper{
					{
						HealthEvaluation: &NodesHealthEvaluation{
							HealthEvaluation: HealthEvaluation{
								Kind:                  HealthEvaluationKindNodes,
								AggregatedHealthState: pointerutils.ToPtr(HealthStateError),
							},
							TotalCount: to.Int64Ptr(5),
							UnhealthyEvaluations: []HealthEvaluationWrapper{
								{
									HealthEvaluation: &NodeHealthEvaluation{
										HealthEvaluation: HealthEvaluation{
											Kind:                  HealthEvaluationKindNode,
											AggregatedHealthState: pointerutils.ToPtr(HealthStateError),
										},
										NodeName: to.StringPtr("_Node_0"),
									},
								},
							},
						},
					},
					{
						HealthEvaluation: &HealthEvaluation{
							Kind:                  HealthEvaluationKindUpgradeDomainNodes,
							AggregatedHealthState: pointerutils.ToPtr(HealthStateWarning),
							Description:           to.StringPtr("UD1"),
						},
					},
				},
			},
		}

		if diff := cmp.Diff(health, want); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("service description with unknown partition scheme and policies", func(t *testing.T) {
		sd, err := UnmarshalServiceDescription([]byte(`{
			"ServiceKind": "Stateless",
			"ServiceName": "fabric:/app/web",
			"ServiceTypeName": "WebType",
			"InstanceCount": 2,
			"PartitionDescription": {"PartitionScheme": "Hashed"},
			"ServicePlacementPolicies": [
				{"Type": "RequireDomain", "DomainName": "fd:/dc1"},
				{"Type": "Stretched"}
			]
		}`))
		if err != nil {
			t.Fatal(err)
		}

		want := &StatelessServiceDescription{
			ServiceDescription: ServiceDescription{
				ServiceKind:          ServiceKindStateless,
				ServiceName:          "fabric:/app/web",
				ServiceTypeName:      "WebType",
				PartitionDescription: &PartitionSchemeDescription{PartitionScheme: "Hashed"},
				ServicePlacementPolicies: []BasicServicePlacementPolicyDescription{
					&ServicePlacementRequiredDomainPolicyDescription{
						ServicePlacementPolicyDescription: ServicePlacementPolicyDescription{Type: ServicePlacementPolicyTypeRequireDomain},
						DomainName:                        to.StringPtr("fd:/dc1"),
					},
					&ServicePlacementPolicyDescription{Type: "Stretched"},
				},
			},
			InstanceCount: 2,
		}

		if diff := cmp.Diff(sd, BasicServiceDescription(want)); diff != "" {
			t.Error(diff)
		}

		b, err := json.Marshal(sd)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != `{"ServiceKind":"Stateless","ServiceName":"fabric:/app/web","ServiceTypeName":"WebType","PartitionDescription":{"PartitionScheme":"Hashed"},"ServicePlacementPolicies":[{"Type":"RequireDomain","DomainName":"fd:/dc1"},{"Type":"Stretched"}],"InstanceCount":2}` {
			t.Error(string(b))
		}
	})

	t.Run("unknown service kind keeps the kind and its partition scheme", func(t *testing.T) {
		sd, err := UnmarshalServiceDescription([]byte(`{"ServiceKind":"Actor","ServiceName":"fabric:/app/actor","ServiceTypeName":"ActorType","PartitionDescription":{"PartitionScheme":"Singleton"}}`))
		if err != nil {
			t.Fatal(err)
		}

		want := &ServiceDescription{
			ServiceKind:          "Actor",
			ServiceName:          "fabric:/app/actor",
			ServiceTypeName:      "ActorType",
			PartitionDescription: NewSingletonPartitionSchemeDescription(),
		}

		if diff := cmp.Diff(sd, BasicServiceDescription(want)); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("paged partitions", func(t *testing.T) {
		var l PagedServicePartitionInfoList
		err := json.Unmarshal([]byte(`{
			"ContinuationToken": "",
			"Items": [
				{"ServiceKind": "Stateful", "HealthState": "Ok", "PartitionStatus": "Ready", "TargetReplicaSetSize": 3,
				 "PartitionInformation": {"ServicePartitionKind": "Int64Range", "Id": "p1", "LowKey": "-9223372036854775808", "HighKey": "9223372036854775807"}},
				{"ServiceKind": "SelfReconfiguring", "PartitionInformation": {"ServicePartitionKind": "Named", "Id": "p2", "Name": "east"}}
			]
		}`), &l)
		if err != nil {
			t.Fatal(err)
		}

		if len(l.Items) != 2 {
			t.Fatalf("got %d items", len(l.Items))
		}

		stateful, ok := l.Items[0].(*StatefulServicePartitionInfo)
		if !ok {
			t.Fatalf("unexpected type %T", l.Items[0])
		}
		if r, ok := stateful.PartitionInformation.(*Int64RangePartitionInformation); !ok || *r.HighKey != "9223372036854775807" {
			t.Errorf("unexpected partition information %#v", stateful.PartitionInformation)
		}
		if *stateful.TargetReplicaSetSize != 3 {
			t.Error(*stateful.TargetReplicaSetSize)
		}

		unknown, ok := l.Items[1].(*ServicePartitionInfo)
		if !ok {
			t.Fatalf("unexpected type %T", l.Items[1])
		}
		if unknown.ServiceKind != "SelfReconfiguring" {
			t.Error(unknown.ServiceKind)
		}
		if n, ok := unknown.PartitionInformation.(*NamedPartitionInformation); !ok || *n.Name != "east" {
			t.Errorf("unexpected partition information %#v", unknown.PartitionInformation)
		}
	})

	t.Run("chaos events", func(t *testing.T) {
		var segment ChaosEventsSegment
		err := json.Unmarshal([]byte(`{"History":[
			{"ChaosEvent":{"Kind":"Started","TimeStampUtc":"2017-04-14T04:27:19.049Z","ChaosParameters":{"MaxConcurrentFaults":3}}},
			{"ChaosEvent":{"Kind":"ExecutingFaults","TimeStampUtc":"2017-04-14T04:27:20.667Z","Faults":["RestartNode"]}},
			{"ChaosEvent":{"Kind":"Paused","TimeStampUtc":"2017-04-14T04:28:00Z"}}
		]}`), &segment)
		if err != nil {
			t.Fatal(err)
		}

		if _, ok := segment.History[0].ChaosEvent.(*StartedChaosEvent); !ok {
			t.Errorf("unexpected type %T", segment.History[0].ChaosEvent)
		}
		if e, ok := segment.History[1].ChaosEvent.(*ExecutingFaultsChaosEvent); !ok || e.Faults[0] != "RestartNode" {
			t.Errorf("unexpected event %#v", segment.History[1].ChaosEvent)
		}
		if e := segment.History[2].ChaosEvent.GetChaosEvent(); e.Kind != "Paused" || !e.TimeStampUtc.Equal(time.Date(2017, 4, 14, 4, 28, 0, 0, time.UTC)) {
			t.Errorf("unexpected event %#v", e)
		}
	})

	t.Run("repair task", func(t *testing.T) {
		var task RepairTask
		err := json.Unmarshal([]byte(`{"TaskId":"t1","State":"Preparing","Action":"System.Reboot",
			"Target":{"Kind":"Node","NodeNames":["_Node_0"]},
			"Impact":{"Kind":"Node","NodeImpactList":[{"NodeName":"_Node_0","ImpactLevel":"Restart"}]}}`), &task)
		if err != nil {
			t.Fatal(err)
		}

		if target, ok := task.Target.(*NodeRepairTargetDescription); !ok || target.NodeNames[0] != "_Node_0" {
			t.Errorf("unexpected target %#v", task.Target)
		}
		if impact, ok := task.Impact.(*NodeRepairImpactDescription); !ok || *impact.NodeImpactList[0].ImpactLevel != ImpactLevelRestart {
			t.Errorf("unexpected impact %#v", task.Impact)
		}
	})

	t.Run("null union", func(t *testing.T) {
		var w HealthEvaluationWrapper
		err := json.Unmarshal([]byte(`{"HealthEvaluation":null}`), &w)
		if err != nil {
			t.Fatal(err)
		}
		if w.HealthEvaluation != nil {
			t.Errorf("unexpected evaluation %#v", w.HealthEvaluation)
		}
	})
}

func TestStringifyRedactsSecrets(t *testing.T) {
	password := api.SecureString("REGISTRYSECRET")
	credential := NewImageRegistryCredential("example.azurecr.io", "admin")
	credential.Password = &password

	accountKey := api.SecureString("ACCOUNTKEYSECRET")
	volume := NewVolumeResourceDescription("sharedVolume", "account", "share")
	volume.Properties.AzureFileParameters.AccountKey = &accountKey

	sharePassword := api.SecureString("SHAREPASSWORDSECRET")
	share := NewFileShareBackupStorageDescription(`\\fileserver\backups`)
	share.PrimaryUserName = to.StringPtr("backupuser")
	share.PrimaryPassword = &sharePassword

	for _, tt := range []struct {
		name   string
		in     interface{}
		secret string
		public string
	}{
		{
			name:   "image registry password",
			in:     credential,
			secret: "REGISTRYSECRET",
			public: "example.azurecr.io",
		},
		{
			name:   "secret value",
			in:     NewSecretValueResourceDescription("v1", "VALUESECRET"),
			secret: "VALUESECRET",
			public: "v1",
		},
		{
			name:   "azure file account key",
			in:     volume,
			secret: "ACCOUNTKEYSECRET",
			public: "sharedVolume",
		},
		{
			name: "azure blob connection string in a backup policy",
			in: NewBackupPolicyDescription("daily", false, 3,
				NewFrequencyBasedBackupScheduleDescription("PT24H"),
				NewAzureBlobBackupStorageDescription("AccountKey=BLOBSECRET", "backups")),
			secret: "BLOBSECRET",
			public: "backups",
		},
		{
			name:   "file share password in a backup policy",
			in:     NewBackupPolicyDescription("daily", false, 3, NewFrequencyBasedBackupScheduleDescription("PT24H"), share),
			secret: "SHAREPASSWORDSECRET",
			public: "backupuser",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := api.Stringify(tt.in)
			if strings.Contains(got, tt.secret) {
				t.Errorf("secret leaked: %s", got)
			}
			if !strings.Contains(got, "[REDACTED]") || !strings.Contains(got, tt.public) {
				t.Errorf("unexpected output: %s", got)
			}
		})
	}
}
