package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"
)

const futureValue = "ValueAddedInALaterRelease"

func testEnum[T ~string](t *testing.T, known []T, isKnown func(T) bool) {
	t.Helper()

	if len(known) == 0 {
		t.Fatal("no known values")
	}

	seen := map[T]bool{}
	for _, v := range known {
		if seen[v] {
			t.Errorf("duplicate value %q", v)
		}
		seen[v] = true

		if !isKnown(v) {
			t.Errorf("%q: not known", v)
		}

		b, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != `"`+string(v)+`"` {
			t.Errorf("%q: marshalled to %s", v, b)
		}

		var got T
		err = json.Unmarshal(b, &got)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("%q: round tripped to %q", v, got)
		}
	}

	var got T
	err := json.Unmarshal([]byte(`"`+futureValue+`"`), &got)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != futureValue {
		t.Errorf("unknown value decoded to %q", got)
	}
	if isKnown(got) {
		t.Errorf("unknown value %q reported as known", got)
	}

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"`+futureValue+`"` {
		t.Errorf("unknown value marshalled to %s", b)
	}
}

func TestEnums(t *testing.T) {
	t.Run("HealthState", func(t *testing.T) { testEnum(t, PossibleHealthStateValues(), HealthState.IsKnown) })
	t.Run("HealthEvaluationKind", func(t *testing.T) { testEnum(t, PossibleHealthEvaluationKindValues(), HealthEvaluationKind.IsKnown) })
	t.Run("EntityKind", func(t *testing.T) { testEnum(t, PossibleEntityKindValues(), EntityKind.IsKnown) })
	t.Run("NodeStatus", func(t *testing.T) { testEnum(t, PossibleNodeStatusValues(), NodeStatus.IsKnown) })
	t.Run("NodeDeactivationIntent", func(t *testing.T) { testEnum(t, PossibleNodeDeactivationIntentValues(), NodeDeactivationIntent.IsKnown) })
	t.Run("NodeDeactivationStatus", func(t *testing.T) { testEnum(t, PossibleNodeDeactivationStatusValues(), NodeDeactivationStatus.IsKnown) })
	t.Run("NodeDeactivationTaskType", func(t *testing.T) { testEnum(t, PossibleNodeDeactivationTaskTypeValues(), NodeDeactivationTaskType.IsKnown) })
	t.Run("CreateFabricDump", func(t *testing.T) { testEnum(t, PossibleCreateFabricDumpValues(), CreateFabricDump.IsKnown) })
	t.Run("ApplicationStatus", func(t *testing.T) { testEnum(t, PossibleApplicationStatusValues(), ApplicationStatus.IsKnown) })
	t.Run("ApplicationDefinitionKind", func(t *testing.T) { testEnum(t, PossibleApplicationDefinitionKindValues(), ApplicationDefinitionKind.IsKnown) })
	t.Run("ApplicationTypeStatus", func(t *testing.T) { testEnum(t, PossibleApplicationTypeStatusValues(), ApplicationTypeStatus.IsKnown) })
	t.Run("ApplicationTypeDefinitionKind", func(t *testing.T) { testEnum(t, PossibleApplicationTypeDefinitionKindValues(), ApplicationTypeDefinitionKind.IsKnown) })
	t.Run("ApplicationPackageCleanupPolicy", func(t *testing.T) { testEnum(t, PossibleApplicationPackageCleanupPolicyValues(), ApplicationPackageCleanupPolicy.IsKnown) })
	t.Run("ProvisionApplicationTypeKind", func(t *testing.T) { testEnum(t, PossibleProvisionApplicationTypeKindValues(), ProvisionApplicationTypeKind.IsKnown) })
	t.Run("UpgradeKind", func(t *testing.T) { testEnum(t, PossibleUpgradeKindValues(), UpgradeKind.IsKnown) })
	t.Run("UpgradeMode", func(t *testing.T) { testEnum(t, PossibleUpgradeModeValues(), UpgradeMode.IsKnown) })
	t.Run("UpgradeSortOrder", func(t *testing.T) { testEnum(t, PossibleUpgradeSortOrderValues(), UpgradeSortOrder.IsKnown) })
	t.Run("FailureAction", func(t *testing.T) { testEnum(t, PossibleFailureActionValues(), FailureAction.IsKnown) })
	t.Run("UpgradeState", func(t *testing.T) { testEnum(t, PossibleUpgradeStateValues(), UpgradeState.IsKnown) })
	t.Run("UpgradeDomainState", func(t *testing.T) { testEnum(t, PossibleUpgradeDomainStateValues(), UpgradeDomainState.IsKnown) })
	t.Run("FailureReason", func(t *testing.T) { testEnum(t, PossibleFailureReasonValues(), FailureReason.IsKnown) })
	t.Run("ServiceKind", func(t *testing.T) { testEnum(t, PossibleServiceKindValues(), ServiceKind.IsKnown) })
	t.Run("ServiceStatus", func(t *testing.T) { testEnum(t, PossibleServiceStatusValues(), ServiceStatus.IsKnown) })
	t.Run("PartitionScheme", func(t *testing.T) { testEnum(t, PossiblePartitionSchemeValues(), PartitionScheme.IsKnown) })
	t.Run("ServicePartitionKind", func(t *testing.T) { testEnum(t, PossibleServicePartitionKindValues(), ServicePartitionKind.IsKnown) })
	t.Run("ServicePartitionStatus", func(t *testing.T) { testEnum(t, PossibleServicePartitionStatusValues(), ServicePartitionStatus.IsKnown) })
	t.Run("ServiceCorrelationScheme", func(t *testing.T) { testEnum(t, PossibleServiceCorrelationSchemeValues(), ServiceCorrelationScheme.IsKnown) })
	t.Run("ServiceLoadMetricWeight", func(t *testing.T) { testEnum(t, PossibleServiceLoadMetricWeightValues(), ServiceLoadMetricWeight.IsKnown) })
	t.Run("ServicePlacementPolicyType", func(t *testing.T) { testEnum(t, PossibleServicePlacementPolicyTypeValues(), ServicePlacementPolicyType.IsKnown) })
	t.Run("MoveCost", func(t *testing.T) { testEnum(t, PossibleMoveCostValues(), MoveCost.IsKnown) })
	t.Run("ServicePackageActivationMode", func(t *testing.T) { testEnum(t, PossibleServicePackageActivationModeValues(), ServicePackageActivationMode.IsKnown) })
	t.Run("ReplicaStatus", func(t *testing.T) { testEnum(t, PossibleReplicaStatusValues(), ReplicaStatus.IsKnown) })
	t.Run("ReplicaRole", func(t *testing.T) { testEnum(t, PossibleReplicaRoleValues(), ReplicaRole.IsKnown) })
	t.Run("ReplicaHealthReportServiceKind", func(t *testing.T) { testEnum(t, PossibleReplicaHealthReportServiceKindValues(), ReplicaHealthReportServiceKind.IsKnown) })
	t.Run("BackupEntityKind", func(t *testing.T) { testEnum(t, PossibleBackupEntityKindValues(), BackupEntityKind.IsKnown) })
	t.Run("BackupScheduleKind", func(t *testing.T) { testEnum(t, PossibleBackupScheduleKindValues(), BackupScheduleKind.IsKnown) })
	t.Run("BackupScheduleFrequencyType", func(t *testing.T) { testEnum(t, PossibleBackupScheduleFrequencyTypeValues(), BackupScheduleFrequencyType.IsKnown) })
	t.Run("DayOfWeek", func(t *testing.T) { testEnum(t, PossibleDayOfWeekValues(), DayOfWeek.IsKnown) })
	t.Run("BackupStorageKind", func(t *testing.T) { testEnum(t, PossibleBackupStorageKindValues(), BackupStorageKind.IsKnown) })
	t.Run("ManagedIdentityType", func(t *testing.T) { testEnum(t, PossibleManagedIdentityTypeValues(), ManagedIdentityType.IsKnown) })
	t.Run("RetentionPolicyType", func(t *testing.T) { testEnum(t, PossibleRetentionPolicyTypeValues(), RetentionPolicyType.IsKnown) })
	t.Run("BackupType", func(t *testing.T) { testEnum(t, PossibleBackupTypeValues(), BackupType.IsKnown) })
	t.Run("BackupState", func(t *testing.T) { testEnum(t, PossibleBackupStateValues(), BackupState.IsKnown) })
	t.Run("RestoreState", func(t *testing.T) { testEnum(t, PossibleRestoreStateValues(), RestoreState.IsKnown) })
	t.Run("BackupPolicyScope", func(t *testing.T) { testEnum(t, PossibleBackupPolicyScopeValues(), BackupPolicyScope.IsKnown) })
	t.Run("BackupSuspensionScope", func(t *testing.T) { testEnum(t, PossibleBackupSuspensionScopeValues(), BackupSuspensionScope.IsKnown) })
	t.Run("ChaosStatus", func(t *testing.T) { testEnum(t, PossibleChaosStatusValues(), ChaosStatus.IsKnown) })
	t.Run("ChaosScheduleStatus", func(t *testing.T) { testEnum(t, PossibleChaosScheduleStatusValues(), ChaosScheduleStatus.IsKnown) })
	t.Run("ChaosEventKind", func(t *testing.T) { testEnum(t, PossibleChaosEventKindValues(), ChaosEventKind.IsKnown) })
	t.Run("RepairTaskState", func(t *testing.T) { testEnum(t, PossibleRepairTaskStateValues(), RepairTaskState.IsKnown) })
	t.Run("RepairTargetKind", func(t *testing.T) { testEnum(t, PossibleRepairTargetKindValues(), RepairTargetKind.IsKnown) })
	t.Run("RepairImpactKind", func(t *testing.T) { testEnum(t, PossibleRepairImpactKindValues(), RepairImpactKind.IsKnown) })
	t.Run("ImpactLevel", func(t *testing.T) { testEnum(t, PossibleImpactLevelValues(), ImpactLevel.IsKnown) })
	t.Run("ResultStatus", func(t *testing.T) { testEnum(t, PossibleResultStatusValues(), ResultStatus.IsKnown) })
	t.Run("RepairTaskHealthCheckState", func(t *testing.T) { testEnum(t, PossibleRepairTaskHealthCheckStateValues(), RepairTaskHealthCheckState.IsKnown) })
	t.Run("OperationState", func(t *testing.T) { testEnum(t, PossibleOperationStateValues(), OperationState.IsKnown) })
	t.Run("OperationType", func(t *testing.T) { testEnum(t, PossibleOperationTypeValues(), OperationType.IsKnown) })
	t.Run("DataLossMode", func(t *testing.T) { testEnum(t, PossibleDataLossModeValues(), DataLossMode.IsKnown) })
	t.Run("QuorumLossMode", func(t *testing.T) { testEnum(t, PossibleQuorumLossModeValues(), QuorumLossMode.IsKnown) })
	t.Run("RestartPartitionMode", func(t *testing.T) { testEnum(t, PossibleRestartPartitionModeValues(), RestartPartitionMode.IsKnown) })
	t.Run("NodeTransitionType", func(t *testing.T) { testEnum(t, PossibleNodeTransitionTypeValues(), NodeTransitionType.IsKnown) })
	t.Run("ResourceStatus", func(t *testing.T) { testEnum(t, PossibleResourceStatusValues(), ResourceStatus.IsKnown) })
	t.Run("OperatingSystemType", func(t *testing.T) { testEnum(t, PossibleOperatingSystemTypeValues(), OperatingSystemType.IsKnown) })
	t.Run("ImageRegistryPasswordType", func(t *testing.T) { testEnum(t, PossibleImageRegistryPasswordTypeValues(), ImageRegistryPasswordType.IsKnown) })
	t.Run("EnvironmentVariableType", func(t *testing.T) { testEnum(t, PossibleEnvironmentVariableTypeValues(), EnvironmentVariableType.IsKnown) })
	t.Run("SecretKind", func(t *testing.T) { testEnum(t, PossibleSecretKindValues(), SecretKind.IsKnown) })
	t.Run("VolumeProvider", func(t *testing.T) { testEnum(t, PossibleVolumeProviderValues(), VolumeProvider.IsKnown) })
	t.Run("NetworkKind", func(t *testing.T) { testEnum(t, PossibleNetworkKindValues(), NetworkKind.IsKnown) })
	t.Run("HeaderMatchType", func(t *testing.T) { testEnum(t, PossibleHeaderMatchTypeValues(), HeaderMatchType.IsKnown) })
	t.Run("PathMatchType", func(t *testing.T) { testEnum(t, PossiblePathMatchTypeValues(), PathMatchType.IsKnown) })
	t.Run("FabricErrorCodes", func(t *testing.T) { testEnum(t, PossibleFabricErrorCodesValues(), FabricErrorCodes.IsKnown) })
}

func TestEnumInStruct(t *testing.T) {
	var n NodeInfo
	err := json.Unmarshal([]byte(`{"Name":"_Node_0","NodeStatus":"Hibernating","HealthState":"Ok"}`), &n)
	if err != nil {
		t.Fatal(err)
	}

	if *n.NodeStatus != NodeStatus("Hibernating") || n.NodeStatus.IsKnown() {
		t.Errorf("unexpected node status %q", *n.NodeStatus)
	}
	if *n.HealthState != HealthStateOk {
		t.Errorf("unexpected health state %q", *n.HealthState)
	}

	b, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"Name":"_Node_0","NodeStatus":"Hibernating","HealthState":"Ok"}` {
		t.Error(string(b))
	}
}
