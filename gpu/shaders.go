package gpu

// WorkgroupSize is the thread-group size both kernels below dispatch
// with — large enough to keep compute units busy on typical desktop and
// mobile GPUs without over-subscribing register/shared-memory budgets.
const WorkgroupSize = 256

// bfsShaderSource is the WGSL compute kernel for one level of
// level-synchronous BFS. Bindings: (0) uniform params, (1) row_offsets,
// (2) col_indices, (3) distances (atomic<u32>), (4) updated (atomic<u32>).
const bfsShaderSource = `
struct Params {
    num_nodes: u32,
    current_level: u32,
    source: u32,
    _pad: u32,
}

@group(0) @binding(0) var<uniform> params: Params;
@group(0) @binding(1) var<storage, read> row_offsets: array<u32>;
@group(0) @binding(2) var<storage, read> col_indices: array<u32>;
@group(0) @binding(3) var<storage, read_write> distances: array<atomic<u32>>;
@group(0) @binding(4) var<storage, read_write> updated: atomic<u32>;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let node = gid.x;
    if (node >= params.num_nodes) {
        return;
    }
    if (atomicLoad(&distances[node]) != params.current_level) {
        return;
    }

    let start = row_offsets[node];
    let end = row_offsets[node + 1u];
    for (var i = start; i < end; i = i + 1u) {
        let neighbor = col_indices[i];
        let old = atomicMin(&distances[neighbor], params.current_level + 1u);
        if (old > params.current_level + 1u) {
            atomicStore(&updated, 1u);
        }
    }
}
`

// pageRankShaderSource is the WGSL compute kernel for one PageRank
// iteration over the reverse CSR. Bindings: (0) uniform params,
// (1) rev_row_offsets, (2) rev_col_indices, (3) current_scores,
// (4) next_scores, (5) out_degrees.
const pageRankShaderSource = `
struct Params {
    num_nodes: u32,
    damping: f32,
    iteration: u32,
    dangling_sum: f32,
}

@group(0) @binding(0) var<uniform> params: Params;
@group(0) @binding(1) var<storage, read> rev_row_offsets: array<u32>;
@group(0) @binding(2) var<storage, read> rev_col_indices: array<u32>;
@group(0) @binding(3) var<storage, read> current_scores: array<f32>;
@group(0) @binding(4) var<storage, read_write> next_scores: array<f32>;
@group(0) @binding(5) var<storage, read> out_degrees: array<u32>;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let v = gid.x;
    if (v >= params.num_nodes) {
        return;
    }

    let n = f32(params.num_nodes);
    let base = (1.0 - params.damping) / n + params.damping * params.dangling_sum / n;

    var contribution: f32 = 0.0;
    let start = rev_row_offsets[v];
    let end = rev_row_offsets[v + 1u];
    for (var i = start; i < end; i = i + 1u) {
        let u = rev_col_indices[i];
        let deg = out_degrees[u];
        if (deg > 0u) {
            contribution = contribution + current_scores[u] / f32(deg);
        }
    }

    next_scores[v] = base + params.damping * contribution;
}
`
